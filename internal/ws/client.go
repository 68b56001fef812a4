package ws

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client - посредник между WebSocket-подключением и хабом
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan Message
	userID int64
	logger *logrus.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, userID int64, logger *logrus.Logger) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan Message, 64),
		userID: userID,
		logger: logger,
	}
}

// Start регистрирует клиента в хабе и запускает насосы чтения и записи
func (c *Client) Start() {
	c.hub.register <- c
	go c.writePump()
	go c.readPump()
}

// readPump читает входящие сообщения, поддерживая соединение живым
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.WithFields(logrus.Fields{
					"service": "ws",
					"user_id": c.userID,
				}).WithError(err).Error("Unexpected websocket close")
			}
			break
		}
		switch {
		case msg.Type == EventPing:
			select {
			case c.send <- Message{Type: EventPong}:
			default:
			}
		case c.hub.inbound != nil:
			c.hub.inbound(context.Background(), c.userID, msg)
		}
	}
}

// writePump пишет исходящие сообщения и периодические ping-фреймы
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
