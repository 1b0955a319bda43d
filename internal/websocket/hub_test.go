package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"adminsearch-be/internal/dto"
	"adminsearch-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, sessionID string) *Client {
	return &Client{Hub: hub, SessionID: sessionID, Send: make(chan []byte, sendBuffer)}
}

func TestHubDeliversPerSession(t *testing.T) {
	hub := NewHub(nil, "search_state_events", logger.NewNopLogger())
	go hub.Run()

	watcher := newTestClient(hub, "s-1")
	other := newTestClient(hub, "s-2")
	hub.register <- watcher
	hub.register <- other
	require.Eventually(t, func() bool {
		return hub.ClientCount("s-1") == 1 && hub.ClientCount("s-2") == 1
	}, time.Second, 5*time.Millisecond)

	hub.PublishState("s-1", dto.SearchStateResponse{SessionId: "s-1", Query: "rahul", IsSearching: true, ShowResults: true})

	select {
	case raw := <-watcher.Send:
		var msg struct {
			Type string                  `json:"type"`
			Data dto.SearchStateResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "search_state", msg.Type)
		assert.Equal(t, "rahul", msg.Data.Query)
		assert.True(t, msg.Data.IsSearching)
	case <-time.After(time.Second):
		t.Fatal("state was not delivered")
	}

	select {
	case <-other.Send:
		t.Fatal("state leaked to another session")
	default:
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub(nil, "search_state_events", logger.NewNopLogger())
	go hub.Run()

	client := newTestClient(hub, "s-1")
	hub.register <- client
	hub.unregister <- client

	require.Eventually(t, func() bool { return hub.ClientCount("s-1") == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-client.Send
	assert.False(t, open)
}

func TestHubPublishWithoutWatchers(t *testing.T) {
	hub := NewHub(nil, "search_state_events", logger.NewNopLogger())
	assert.NotPanics(t, func() {
		hub.PublishState("nobody", dto.SearchStateResponse{})
	})
}

func TestHubCloseSessionClosesWatchers(t *testing.T) {
	hub := NewHub(nil, "search_state_events", logger.NewNopLogger())
	go hub.Run()

	first := newTestClient(hub, "s-1")
	second := newTestClient(hub, "s-1")
	other := newTestClient(hub, "s-2")
	hub.register <- first
	hub.register <- second
	hub.register <- other
	require.Eventually(t, func() bool {
		return hub.ClientCount("s-1") == 2 && hub.ClientCount("s-2") == 1
	}, time.Second, 5*time.Millisecond)

	hub.CloseSession("s-1")

	assert.Zero(t, hub.ClientCount("s-1"))
	_, open := <-first.Send
	assert.False(t, open)
	_, open = <-second.Send
	assert.False(t, open)
	assert.Equal(t, 1, hub.ClientCount("s-2"))

	// readPump still unregisters after the close frame. A second close would
	// panic inside Run; the register below only returns once Run got past both.
	hub.unregister <- first
	hub.unregister <- second
	hub.register <- other
	require.Eventually(t, func() bool { return hub.ClientCount("s-2") == 2 }, time.Second, 5*time.Millisecond)
}
