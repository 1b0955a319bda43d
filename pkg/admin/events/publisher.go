package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"adminsearch-be/internal/dto"
	"adminsearch-be/internal/pkg/logger"
	pkgEvents "adminsearch-be/pkg/events"
	pktNats "adminsearch-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Publisher abstracts event publishing for admin search operations
type Publisher interface {
	PublishResultSelected(ctx context.Context, sessionID string, result dto.SearchResultResponse)
}

// NatsPublisher implements Publisher using NATS. A nil connection turns it
// into a no-op so the admin panel keeps working without a broker.
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishResultSelected emits SEARCH_RESULT_SELECTED
func (p *NatsPublisher) PublishResultSelected(ctx context.Context, sessionID string, result dto.SearchResultResponse) {
	if p.publisher == nil {
		return
	}

	evt := ResultSelectedEvent(sessionID, result, time.Now())
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish SEARCH_RESULT_SELECTED event", map[string]interface{}{"error": err.Error()})
	}
}

// ResultSelectedEvent builds the broker event for a non-user selection.
func ResultSelectedEvent(sessionID string, result dto.SearchResultResponse, at time.Time) pkgEvents.BaseEvent {
	data := map[string]interface{}{
		"session_id":  sessionID,
		"entity_type": result.Type,
		"entity_id":   result.Id,
		"title":       result.Title,
		"occurred_at": at,
	}
	if result.Status != "" {
		data["status"] = result.Status
	}
	if result.Amount != nil {
		data["amount"] = *result.Amount
	}

	return pkgEvents.BaseEvent{
		Type:       pkgEvents.TypeSearchResultSelected,
		Data:       data,
		OccurredAt: at,
	}
}

// ChannelPublisher puts selections on an in-process Watermill topic so the
// HTTP request never waits on the broker.
type ChannelPublisher struct {
	pubSub message.Publisher
	topic  string
	logger logger.ILogger
}

func NewChannelPublisher(pubSub message.Publisher, topic string, logger logger.ILogger) *ChannelPublisher {
	return &ChannelPublisher{
		pubSub: pubSub,
		topic:  topic,
		logger: logger,
	}
}

func (p *ChannelPublisher) PublishResultSelected(ctx context.Context, sessionID string, result dto.SearchResultResponse) {
	payload, err := json.Marshal(dto.ResultSelectedMessage{
		SessionId: sessionID,
		Result:    result,
	})
	if err != nil {
		p.logger.Error("ADMIN", "Failed to marshal selection", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := p.pubSub.Publish(p.topic, msg); err != nil {
		p.logger.Error("ADMIN", fmt.Sprintf("Failed to publish to topic %s", p.topic), map[string]interface{}{"error": err.Error()})
	}
}
