package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Search SearchConfig
	Auth   AuthConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	StateLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

// SearchConfig tunes the admin search widget engines.
type SearchConfig struct {
	Latency         time.Duration // simulated "searching" indicator delay
	ResultLimit     int
	Debounce        bool // cancel pending indicator tasks on a new query
	SessionTTL      time.Duration
	SessionCleanup  time.Duration
	SelectionTopic  string // in-process topic for non-user selections
	StateRedisTopic string
}

type AuthConfig struct {
	JwtSecret string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			StateLogFilePath:   getEnv("STATE_LOG_FILE_PATH", "logs/search_state.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Search: SearchConfig{
			Latency:         getEnvAsDuration("SEARCH_LATENCY", 300*time.Millisecond),
			ResultLimit:     getEnvAsInt("SEARCH_RESULT_LIMIT", 10),
			Debounce:        getEnvAsBool("SEARCH_DEBOUNCE", false),
			SessionTTL:      getEnvAsDuration("SEARCH_SESSION_TTL", 30*time.Minute),
			SessionCleanup:  getEnvAsDuration("SEARCH_SESSION_CLEANUP", 10*time.Minute),
			SelectionTopic:  getEnv("SEARCH_SELECTION_TOPIC", "search.result_selected"),
			StateRedisTopic: getEnv("SEARCH_STATE_REDIS_TOPIC", "search_state_events"),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", "default_secret"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
