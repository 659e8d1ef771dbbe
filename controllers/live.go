// controllers/live.go
package controllers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"banyadesk-backend/config"

	"github.com/gin-gonic/gin"
)

// The live channel carries exactly one thing: how many browser tabs are
// connected right now. No business data ever crosses it.

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type liveHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

var hub = &liveHub{conns: make(map[*websocket.Conn]bool)}

func (h *liveHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
	h.broadcastLocked()
}

func (h *liveHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	h.broadcastLocked()
}

func (h *liveHub) broadcastLocked() {
	payload := map[string]int{"connectedClients": len(h.conns)}
	for conn := range h.conns {
		if err := conn.WriteJSON(payload); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// Count returns the current number of connected peers.
func (h *liveHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// LiveClients upgrades to WebSocket and keeps the peer subscribed to the
// connected-client count until it hangs up.
func LiveClients(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		config.LogError(config.GetLogger(), "controllers", "LiveClients", "websocket upgrade", nil, err)
		return
	}

	hub.add(conn)
	defer func() {
		hub.remove(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
