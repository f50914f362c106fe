package config

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WSHub fans out dashboard refresh events to connected clients. The
// frontend subscribes once and re-fetches the productivity report
// whenever an event arrives.
type WSHub struct {
	mu      sync.RWMutex
	clients map[string]*wsClient

	upgrader websocket.Upgrader
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

type WSEvent struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
}

func NewWSHub() *WSHub {
	return &WSHub{
		clients: make(map[string]*wsClient),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *WSHub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	id := uuid.New().String()
	client := &wsClient{conn: conn}

	h.mu.Lock()
	h.clients[id] = client
	h.mu.Unlock()

	go h.readLoop(id, client)
}

// readLoop drains incoming frames so ping/pong and close messages are
// processed; clients are not expected to send anything meaningful.
func (h *WSHub) readLoop(id string, client *wsClient) {
	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *WSHub) Broadcast(event string) {
	msg := WSEvent{
		Event:     event,
		Timestamp: time.Now(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, client := range h.clients {
		client.mu.Lock()
		err := client.conn.WriteJSON(msg)
		client.mu.Unlock()
		if err != nil {
			log.Printf("WebSocket write to %s failed: %v", id, err)
		}
	}
}

func (h *WSHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
