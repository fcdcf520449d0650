// Package notify fans storage-changed events out to connected views.
package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const (
	EventStorage   = "storage"
	clientBuffer   = 64
	EventConnected = "connected"
)

// Event is one server-sent event. Data is already JSON encoded.
type Event struct {
	EventType string `json:"event"`
	Data      string `json:"data"`
}

// Publisher delivers an event to every open view, best effort.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type Client struct {
	ID     string
	UserID string
	Events chan Event
}

func NewClient(id, userID string) *Client {
	return &Client{
		ID:     id,
		UserID: userID,
		Events: make(chan Event, clientBuffer),
	}
}

type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	logger  *zap.Logger
}

func NewHub(logger ...*zap.Logger) *Hub {
	l := zap.L().Named("notify.hub")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify.hub")
	}
	return &Hub{
		clients: make(map[string]*Client),
		logger:  l,
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	h.logger.Debug("client registered",
		zap.String("client_id", client.ID),
		zap.String("user_id", client.UserID),
		zap.Int("total", len(h.clients)),
	)
}

// Unregister closes the client's channel. Buffered events stay readable.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
		h.logger.Debug("client unregistered",
			zap.String("client_id", clientID),
			zap.Int("total", len(h.clients)),
		)
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast never blocks: a client whose buffer is full misses the event and
// stays stale until it reloads.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Events <- event:
		default:
			h.logger.Warn("client buffer full, dropping event",
				zap.String("client_id", client.ID),
				zap.String("event", event.EventType),
			)
		}
	}
}

func (h *Hub) Publish(_ context.Context, event Event) error {
	h.Broadcast(event)
	return nil
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, client := range h.clients {
		close(client.Events)
		delete(h.clients, id)
	}
}
