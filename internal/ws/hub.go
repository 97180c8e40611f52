// Package ws pushes scoreboard updates to websocket subscribers.
package ws

import (
	"context"
	"log/slog"
	"sync"

	domaingames "courtside/internal/domain/games"
	"courtside/internal/logging"
)

const broadcastBuffer = 64

// Hub maintains the set of connected clients and fans each board out to
// them.
type Hub struct {
	clients   map[*Client]struct{}
	clientsMu sync.RWMutex

	broadcast  chan domaingames.BoardResponse
	register   chan *Client
	unregister chan *Client

	logger *slog.Logger
}

// NewHub constructs a Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan domaingames.BoardResponse, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run drives the hub loop until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.addClient(c)
		case c := <-h.unregister:
			h.removeClient(c)
		case board := <-h.broadcast:
			h.fanOut(board)
		}
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Broadcast queues a board for delivery to every connected client.
// A full queue drops the board; the next poll supersedes it anyway.
func (h *Hub) Broadcast(board domaingames.BoardResponse) {
	select {
	case h.broadcast <- board:
	default:
		logging.Warn(h.logger, "broadcast queue full, dropping board")
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) addClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	h.clients[c] = struct{}{}
	logging.Info(h.logger, "websocket client connected",
		"client_id", c.ID,
		logging.FieldCount, len(h.clients),
	)
}

func (h *Hub) removeClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	logging.Info(h.logger, "websocket client disconnected",
		"client_id", c.ID,
		logging.FieldCount, len(h.clients),
	)
}

func (h *Hub) fanOut(board domaingames.BoardResponse) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if !c.trySend(board) {
			// Slow consumer; cut it loose rather than block the loop.
			logging.Warn(h.logger, "websocket client send buffer full", "client_id", c.ID)
			go h.Unregister(c)
		}
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
	logging.Info(h.logger, "websocket hub stopped")
}
