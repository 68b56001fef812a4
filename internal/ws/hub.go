package ws

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Типы событий, рассылаемых по WebSocket
const (
	EventChatMessage  = "chat_message"
	EventNotification = "notification"
	EventPing         = "ping"
	EventPong         = "pong"
)

// Типы событий, принимаемых от клиентов
const (
	EventSendMessage = "send_message"
	EventAddReaction = "add_reaction"
	EventMarkRead    = "mark_read"
)

// InboundHandler обрабатывает сообщение, присланное клиентом по WebSocket
type InboundHandler func(ctx context.Context, userID int64, msg Message)

// Message - событие, доставляемое подключенным клиентам
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// envelope - событие с адресатами для пересылки между экземплярами
type envelope struct {
	UserIDs []int64 `json:"user_ids"`
	Message Message `json:"message"`
}

// Hub ведет учет активных WebSocket-подключений и доставляет события
// адресатам. Один пользователь может держать несколько подключений.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
	inbound    InboundHandler
	mu         sync.RWMutex
	logger     *logrus.Logger
}

// SetInboundHandler задает обработчик клиентских сообщений.
// Вызывается один раз при сборке приложения, до запуска хаба.
func (h *Hub) SetInboundHandler(handler InboundHandler) {
	h.inbound = handler
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan envelope, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run обрабатывает подключения и рассылку до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	log := h.logger.WithFields(logrus.Fields{
		"service": "ws",
		"method":  "Run",
	})
	log.Info("WebSocket hub started")

	for {
		select {
		case <-ctx.Done():
			h.closeAllClients()
			log.Info("WebSocket hub stopped")
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			log.WithFields(logrus.Fields{
				"user_id":       client.userID,
				"total_clients": total,
			}).Info("WebSocket client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.WithFields(logrus.Fields{
				"user_id":       client.userID,
				"total_clients": total,
			}).Info("WebSocket client disconnected")
		case env := <-h.broadcast:
			h.deliver(env)
		}
	}
}

// SendToUsers доставляет событие всем подключениям указанных пользователей
// на этом экземпляре
func (h *Hub) SendToUsers(userIDs []int64, message Message) {
	env := envelope{UserIDs: userIDs, Message: message}
	select {
	case h.broadcast <- env:
	default:
		h.logger.WithFields(logrus.Fields{
			"service": "ws",
			"method":  "SendToUsers",
			"type":    message.Type,
		}).Warn("Broadcast channel full, dropping message")
	}
}

func (h *Hub) deliver(env envelope) {
	targets := make(map[int64]bool, len(env.UserIDs))
	for _, userID := range env.UserIDs {
		targets[userID] = true
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if !targets[client.userID] {
			continue
		}
		select {
		case client.send <- env.Message:
		default:
			// Переполненный клиент отключается, чтобы не тормозить остальных
			close(client.send)
			delete(h.clients, client)
		}
	}
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}

// ClientCount возвращает количество активных подключений
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
