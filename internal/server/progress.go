package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ProgressMessageType represents the type of progress message.
type ProgressMessageType string

const (
	ProgressTypeStage ProgressMessageType = "stage"
	ProgressTypeDone  ProgressMessageType = "done"
	ProgressTypeError ProgressMessageType = "error"
)

// ProgressMessage is sent to browsers via WebSocket while a generation
// job runs.
type ProgressMessage struct {
	Type    ProgressMessageType `json:"type"`
	Job     string              `json:"job"`
	Stage   string              `json:"stage,omitempty"`
	Detail  string              `json:"detail,omitempty"`
	Archive string              `json:"archive,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// ProgressHub manages WebSocket connections for generation progress.
type ProgressHub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewProgressHub creates a new progress hub.
func NewProgressHub() *ProgressHub {
	return &ProgressHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Local tool, any origin may connect
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (h *ProgressHub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Keep connection alive until client disconnects
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// NotifyStage sends a stage transition for a job to all clients.
func (h *ProgressHub) NotifyStage(job, stage, detail string) {
	h.broadcast(ProgressMessage{Type: ProgressTypeStage, Job: job, Stage: stage, Detail: detail})
}

// NotifyDone sends a completion message for a job to all clients.
func (h *ProgressHub) NotifyDone(job, archiveID string) {
	h.broadcast(ProgressMessage{Type: ProgressTypeDone, Job: job, Archive: archiveID})
}

// NotifyError sends a failure message for a job to all clients.
func (h *ProgressHub) NotifyError(job, errMsg string) {
	h.broadcast(ProgressMessage{Type: ProgressTypeError, Job: job, Error: errMsg})
}

// broadcast sends a message to all connected clients.
func (h *ProgressHub) broadcast(msg ProgressMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		err := client.WriteMessage(websocket.TextMessage, data)
		if err != nil {
			h.mu.Lock()
			delete(h.clients, client)
			h.mu.Unlock()
			client.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *ProgressHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *ProgressHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}
