package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"courtside/internal/logging"
	"courtside/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *nethttp.Request) bool {
		// Dashboard clients connect from arbitrary origins.
		return true
	},
}

// WSHandler upgrades connections and subscribes them to scoreboard
// broadcasts, delivering the current board immediately on connect.
type WSHandler struct {
	hub    *ws.Hub
	store  BoardStore
	logger *slog.Logger
}

// NewWSHandler constructs a WSHandler.
func NewWSHandler(hub *ws.Hub, store BoardStore, logger *slog.Logger) *WSHandler {
	return &WSHandler{hub: hub, store: store, logger: logger}
}

// Subscribe is the websocket endpoint.
func (h *WSHandler) Subscribe(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn(h.logger, "websocket upgrade failed", "error", err)
		return
	}

	client := ws.NewClient(uuid.NewString(), conn, h.hub, h.logger)
	h.hub.Register(client)

	if h.store != nil {
		if board, ok := h.store.Board(); ok {
			client.Send(board)
		}
	}

	go client.WritePump()
	go client.ReadPump()
}
