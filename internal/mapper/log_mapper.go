package mapper

import (
	"adminsearch-be/internal/dto"
	"adminsearch-be/internal/pkg/logger"
)

func ToLogListResponse(entry logger.LogEntry) dto.LogListResponse {
	return dto.LogListResponse{
		Id:        entry.Id,
		Level:     entry.Level,
		Module:    entry.Module,
		Message:   entry.Message,
		Timestamp: entry.Timestamp,
	}
}

func ToLogDetailResponse(entry logger.LogEntry) dto.LogDetailResponse {
	return dto.LogDetailResponse{
		LogListResponse: ToLogListResponse(entry),
		Details:         entry.Details,
	}
}
