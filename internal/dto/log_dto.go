package dto

// --- System Log DTOs ---

type LogListResponse struct {
	Id        string `json:"id"` // MD5 hash of the log line
	Level     string `json:"level"`
	Module    string `json:"module"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}

type LogPageResponse struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Logs  []LogListResponse `json:"logs"`
}
