package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"adminsearch-be/internal/dto"
	"adminsearch-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Hub struct {
	// Registered clients: search session id -> connections (several tabs may
	// watch the same session).
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis relays state pushes between instances; nil for a single node.
	rdb   *redis.Client
	topic string

	// Relayed messages carrying our own id were already delivered locally.
	instanceID string

	logger logger.ILogger
}

type relayPayload struct {
	Origin    string          `json:"origin"`
	SessionID string          `json:"session_id"`
	Message   json.RawMessage `json:"message"`
}

func NewHub(rdb *redis.Client, topic string, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		topic:      topic,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Session has no more watchers", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount is the number of connections watching a session on this node.
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// CloseSession drops every watcher of a session that was closed or expired.
// Closing Send makes writePump send a close frame; the later unregister from
// readPump finds nothing left to remove.
func (h *Hub) CloseSession(sessionID string) {
	h.mu.Lock()
	clients := h.clients[sessionID]
	delete(h.clients, sessionID)
	for _, client := range clients {
		close(client.Send)
	}
	h.mu.Unlock()

	if len(clients) > 0 {
		h.logger.Info("Hub", "Session closed, watchers disconnected", map[string]interface{}{
			"session_id": sessionID,
			"watchers":   len(clients),
		})
	}
}

// PublishState pushes a session's state to its local watchers and, when
// Redis is configured, to the other instances.
func (h *Hub) PublishState(sessionID string, state dto.SearchStateResponse) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "search_state",
		"data": state,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal search state", map[string]interface{}{"error": err.Error()})
		return
	}

	h.deliver(sessionID, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(relayPayload{
			Origin:    h.instanceID,
			SessionID: sessionID,
			Message:   data,
		})
		if err := h.rdb.Publish(context.Background(), h.topic, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to relay state through Redis", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (h *Hub) deliver(sessionID string, data []byte) {
	// Hold the read lock while sending: Run closes Send under the write lock.
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- data:
		default:
			// Slow reader; drop it rather than block the engine's listener.
			h.logger.Warn("Hub", "Client Send buffer full, dropping client", map[string]interface{}{"session_id": sessionID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, h.topic)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload relayPayload
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Redis msg parse error", map[string]interface{}{"error": err.Error()})
			continue
		}
		if payload.Origin == h.instanceID {
			continue
		}
		h.deliver(payload.SessionID, payload.Message)
	}
}
