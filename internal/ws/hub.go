package ws

import (
	"context"
	"sync"

	"jobbridge/internal/logger"

	"go.uber.org/zap"
)

// message is one encoded event plus the entity it concerns, used to honour
// per-client subscriptions.
type message struct {
	entity  string
	payload []byte
}

// Hub fans records_updated events out to websocket clients. All membership
// changes happen on the Run goroutine; the lock only guards reads from
// ClientCount.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}

	broadcast  chan message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	logger *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan message, 1024),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger.OrNop(log),
	}
}

// Run serves the hub until ctx is done, then closes every client. A hub
// must not be run twice.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return
		case c := <-h.register:
			h.add(c)
		case c := <-h.unregister:
			h.remove(c)
		case m := <-h.broadcast:
			h.fanout(m)
		}
	}
}

func (h *Hub) add(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug("ws client joined", zap.Int("clients", n), zap.Strings("entities", c.Entities()))
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	if ok {
		h.logger.Debug("ws client left", zap.Int("clients", n))
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) fanout(m message) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		if c.wants(m.entity) {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		select {
		case c.send <- m.payload:
		default:
			h.logger.Info("ws client too slow, disconnecting")
			h.remove(c)
		}
	}
}

// Register blocks until Run accepts c. Once the hub has stopped, c is closed
// straight away so its pumps exit.
func (h *Hub) Register(c *Client) {
	if h == nil || c == nil {
		return
	}
	select {
	case h.register <- c:
	case <-h.done:
		close(c.send)
	}
}

func (h *Hub) Unregister(c *Client) {
	if h == nil || c == nil {
		return
	}
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues payload for every client subscribed to entity. An empty
// entity reaches every client. Messages are dropped when the queue is full.
func (h *Hub) Broadcast(entity string, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message{entity: entity, payload: payload}:
	default:
		h.logger.Warn("ws broadcast dropped", zap.String("entity", entity), zap.String("reason", "queue_full"))
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
