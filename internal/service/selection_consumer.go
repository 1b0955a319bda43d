// FILE: internal/service/selection_consumer.go
package service

import (
	"context"
	"encoding/json"

	"adminsearch-be/internal/dto"
	"adminsearch-be/internal/pkg/logger"
	adminEvents "adminsearch-be/pkg/admin/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type ISelectionConsumer interface {
	Consume(ctx context.Context) error
}

// selectionConsumer drains the in-process selection topic and forwards each
// selection downstream (the NATS publisher in production).
type selectionConsumer struct {
	subscriber message.Subscriber
	topicName  string
	downstream adminEvents.Publisher
	logger     logger.ILogger
}

func NewSelectionConsumer(
	subscriber message.Subscriber,
	topicName string,
	downstream adminEvents.Publisher,
	logger logger.ILogger,
) ISelectionConsumer {
	return &selectionConsumer{
		subscriber: subscriber,
		topicName:  topicName,
		downstream: downstream,
		logger:     logger,
	}
}

func (c *selectionConsumer) Consume(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (c *selectionConsumer) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ResultSelectedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		c.logger.Error("SELECTION", "Failed to unmarshal message", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		// Ack invalid messages to prevent infinite redelivery
		msg.Ack()
		return
	}

	c.logger.Info("SELECTION", "Search result selected", map[string]interface{}{
		"session_id": payload.SessionId,
		"type":       payload.Result.Type,
		"id":         payload.Result.Id,
	})

	if c.downstream != nil {
		c.downstream.PublishResultSelected(ctx, payload.SessionId, payload.Result)
	}
	msg.Ack()
}
