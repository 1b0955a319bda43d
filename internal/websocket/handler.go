package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs registers the connection for a search session and blocks until it
// closes. Fiber's websocket handler must not return while the conn is in use.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID string) {
	client := NewClient(hub, c, sessionID)
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
