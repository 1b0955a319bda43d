package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"adminsearch-be/internal/dto"
	"adminsearch-be/internal/pkg/logger"
	pkgEvents "adminsearch-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSelectedEvent(t *testing.T) {
	amount := int64(2500)
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	evt := ResultSelectedEvent("s-1", dto.SearchResultResponse{
		Id:     "wd-1",
		Type:   "withdrawal",
		Title:  "Withdrawal - Rahul Sharma",
		Status: "Pending",
		Amount: &amount,
	}, at)

	assert.Equal(t, pkgEvents.TypeSearchResultSelected, evt.EventType())
	assert.Equal(t, at, evt.Timestamp())
	assert.Equal(t, "wd-1", evt.Payload()["entity_id"])
	assert.Equal(t, "withdrawal", evt.Payload()["entity_type"])
	assert.Equal(t, int64(2500), evt.Payload()["amount"])

	noAmount := ResultSelectedEvent("s-1", dto.SearchResultResponse{Id: "content-2", Type: "content"}, at)
	_, hasAmount := noAmount.Payload()["amount"]
	assert.False(t, hasAmount)
}

func TestNatsPublisherWithoutConnection(t *testing.T) {
	p := NewNatsPublisher(nil, logger.NewNopLogger())
	assert.NotPanics(t, func() {
		p.PublishResultSelected(context.Background(), "s-1", dto.SearchResultResponse{Id: "txn-1"})
	})
}

func TestChannelPublisher(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	messages, err := pubSub.Subscribe(ctx, "search.result_selected")
	require.NoError(t, err)

	p := NewChannelPublisher(pubSub, "search.result_selected", logger.NewNopLogger())
	p.PublishResultSelected(ctx, "s-1", dto.SearchResultResponse{Id: "content-2", Type: "content", Title: "Tech Review"})

	select {
	case msg := <-messages:
		var payload dto.ResultSelectedMessage
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, "s-1", payload.SessionId)
		assert.Equal(t, "content-2", payload.Result.Id)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("selection was not published")
	}
}
