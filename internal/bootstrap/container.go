package bootstrap

import (
	"context"
	"log"

	"adminsearch-be/internal/config"
	"adminsearch-be/internal/controller"
	"adminsearch-be/internal/pkg/logger"
	"adminsearch-be/internal/repository/memory"
	"adminsearch-be/internal/service"
	"adminsearch-be/internal/websocket"
	adminEvents "adminsearch-be/pkg/admin/events"

	pktNats "adminsearch-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	SearchController controller.ISearchController
	LogController    controller.ILogController

	// Background Services (Exposed for main.go to run)
	SelectionConsumer service.ISelectionConsumer

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger

	natsPub *pktNats.Publisher
	rdb     *redis.Client
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure (both optional)
	// NATS
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = pub
		}
	} else {
		log.Printf("[INFO] NATS_URL not set, selection events stay in-process")
	}

	// Redis
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.StateLogFilePath)
	wsHub := websocket.NewHub(rdb, cfg.Search.StateRedisTopic, wsLogger)
	go wsHub.Run()

	// 4. Services
	recordSource := memory.NewSampleRecordSource()
	sessionRepo := memory.NewSearchSessionRepository(cfg.Search.SessionTTL, cfg.Search.SessionCleanup, wsHub.CloseSession)

	selectionPublisher := adminEvents.NewChannelPublisher(pubSub, cfg.Search.SelectionTopic, sysLogger)
	selectionConsumer := service.NewSelectionConsumer(
		pubSub,
		cfg.Search.SelectionTopic,
		adminEvents.NewNatsPublisher(natsPub, sysLogger),
		sysLogger,
	)

	searchService := service.NewSearchService(
		recordSource,
		sessionRepo,
		wsHub,
		selectionPublisher,
		sysLogger,
		cfg.Search,
	)

	// 5. Controllers
	return &Container{
		SearchController:  controller.NewSearchController(searchService, wsHub, sysLogger, cfg.Auth.JwtSecret),
		LogController:     controller.NewLogController(sysLogger, cfg.Auth.JwtSecret),
		SelectionConsumer: selectionConsumer,
		WebSocketHub:      wsHub,
		Logger:            sysLogger,
		natsPub:           natsPub,
		rdb:               rdb,
	}
}

// Close releases broker connections and flushes the logger.
func (c *Container) Close() {
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
	_ = c.Logger.Sync()
}
