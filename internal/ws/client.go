package ws

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	domaingames "courtside/internal/domain/games"
	"courtside/internal/logging"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 16
)

// Client is one websocket subscriber.
type Client struct {
	ID     string
	conn   *websocket.Conn
	send   chan domaingames.BoardResponse
	hub    *Hub
	logger *slog.Logger
}

// NewClient wraps an upgraded connection.
func NewClient(id string, conn *websocket.Conn, hub *Hub, logger *slog.Logger) *Client {
	return &Client{
		ID:     id,
		conn:   conn,
		send:   make(chan domaingames.BoardResponse, sendBufferSize),
		hub:    hub,
		logger: logger,
	}
}

// Send queues one board for this client. Used to deliver the current
// board immediately on connect.
func (c *Client) Send(board domaingames.BoardResponse) {
	c.trySend(board)
}

// ReadPump drains inbound frames so pings and close handshakes work.
// Subscribers are read-only; any payload they send is discarded.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Warn(c.logger, "websocket unexpected close", "client_id", c.ID, "error", err)
			}
			return
		}
	}
}

// WritePump writes queued boards and keepalive pings to the peer.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case board, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(board); err != nil {
				logging.Warn(c.logger, "websocket write failed", "client_id", c.ID, "error", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) trySend(board domaingames.BoardResponse) bool {
	select {
	case c.send <- board:
		return true
	default:
		return false
	}
}
