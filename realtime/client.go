// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/danielhkuo/vote-service/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 16
)

// Client is one WebSocket connection. It joins and leaves session channels
// on request and writes whatever the Broker sends it.
type Client struct {
	id     string
	conn   *websocket.Conn
	broker Broker
	send   chan []byte
	done   chan struct{}
	once   sync.Once
	logger *slog.Logger
}

func NewClient(conn *websocket.Conn, broker Broker) *Client {
	id := uuid.NewString()
	return &Client{
		id:     id,
		conn:   conn,
		broker: broker,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
		logger: slog.With("conn_id", id),
	}
}

func (c *Client) ID() string { return c.id }

// Send queues msg for the write loop. It never blocks.
func (c *Client) Send(msg []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// Run serves the connection until the peer goes away. It leaves every
// channel and closes the connection before returning.
func (c *Client) Run() {
	c.logger.Info("realtime client connected")
	go c.writeLoop()
	c.readLoop()
	c.close()
	c.logger.Info("realtime client disconnected")
}

func (c *Client) close() {
	c.once.Do(func() {
		c.broker.UnsubscribeAll(c)
		close(c.done)
		c.conn.Close()
	})
}

func (c *Client) readLoop() {
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warn("realtime read failed", "error", err)
			}
			return
		}
		c.handleMessage(data)
	}
}

func (c *Client) handleMessage(data []byte) {
	var msg models.ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError("Invalid message")
		return
	}

	switch msg.Type {
	case models.EventJoinSession:
		if msg.SessionID == "" {
			c.sendError("sessionId is required")
			return
		}
		c.broker.Subscribe(msg.SessionID, c)
		c.logger.Debug("joined session", "session_id", msg.SessionID)
	case models.EventLeaveSession:
		if msg.SessionID == "" {
			c.sendError("sessionId is required")
			return
		}
		c.broker.Unsubscribe(msg.SessionID, c)
		c.logger.Debug("left session", "session_id", msg.SessionID)
	default:
		c.sendError("Unknown message type: " + msg.Type)
	}
}

func (c *Client) sendError(message string) {
	data, err := json.Marshal(models.ServerEvent{Type: models.EventError, Message: message})
	if err != nil {
		c.logger.Error("failed to encode error event", "error", err)
		return
	}
	if !c.Send(data) {
		c.logger.Warn("dropped error event", "message", message)
	}
}

func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.logger.Warn("realtime write failed", "error", err)
				c.close()
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		}
	}
}

var _ Subscriber = (*Client)(nil)
