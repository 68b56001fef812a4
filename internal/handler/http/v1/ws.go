package v1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Входящие полезные нагрузки WebSocket-фреймов
type wsSendMessagePayload struct {
	ChatID          string  `json:"chatId"`
	Text            *string `json:"text"`
	ClientMessageID *string `json:"clientMessageId"`
	ParentMessageID *string `json:"parentMessageId"`
}

type wsReactionPayload struct {
	MessageID string `json:"messageId"`
	Reaction  string `json:"reaction"`
}

type wsMarkReadPayload struct {
	MessageID string `json:"messageId"`
}

// @Summary WebSocket endpoint
// @Description Upgrade to a WebSocket connection for real-time chat and notification events. Authenticate with a "token" query parameter.
// @Tags WebSocket
// @Security BearerAuth
// @Success 101 "Switching Protocols"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	log := h.logger.WithField("method", "serveWS")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}
	ws.NewClient(h.hub, conn, currentUserID(c), h.logger).Start()
}

// HandleInboundEvent обрабатывает фрейм, присланный клиентом по WebSocket.
// Подключается к хабу через SetInboundHandler при сборке приложения.
func (h *Handler) HandleInboundEvent(ctx context.Context, userID int64, msg ws.Message) {
	log := h.logger.WithField("method", "HandleInboundEvent").WithField("user_id", userID)

	raw, err := json.Marshal(msg.Data)
	if err != nil {
		log.WithError(err).Warn("Failed to re-encode inbound payload")
		return
	}

	switch msg.Type {
	case ws.EventSendMessage:
		var payload wsSendMessagePayload
		if err := json.Unmarshal(raw, &payload); err != nil || payload.ChatID == "" {
			log.WithError(err).Warn("Malformed send_message payload")
			return
		}
		isMember, err := h.chatService.IsParticipant(ctx, payload.ChatID, userID)
		if err != nil || !isMember {
			return
		}
		saved, err := h.chatService.SaveMessage(ctx, &models.ChatMessage{
			ChatID:          payload.ChatID,
			SenderID:        userID,
			Text:            payload.Text,
			ClientMessageID: payload.ClientMessageID,
			ParentMessageID: payload.ParentMessageID,
		})
		if err != nil {
			log.WithError(err).Error("Failed to save websocket chat message")
			return
		}
		h.broadcastToChat(ctx, log, saved.ChatID, ws.Message{Type: ws.EventChatMessage, Data: saved})
	case ws.EventAddReaction:
		var payload wsReactionPayload
		if err := json.Unmarshal(raw, &payload); err != nil || payload.MessageID == "" {
			log.WithError(err).Warn("Malformed add_reaction payload")
			return
		}
		message, err := h.chatService.AddReaction(ctx, payload.MessageID, userID, payload.Reaction)
		if err != nil {
			log.WithError(err).Warn("Failed to apply websocket reaction")
			return
		}
		h.broadcastToChat(ctx, log, message.ChatID, ws.Message{Type: ws.EventChatMessage, Data: message})
	case ws.EventMarkRead:
		var payload wsMarkReadPayload
		if err := json.Unmarshal(raw, &payload); err != nil || payload.MessageID == "" {
			log.WithError(err).Warn("Malformed mark_read payload")
			return
		}
		message, err := h.chatService.MarkAsRead(ctx, payload.MessageID, userID)
		if err != nil {
			log.WithError(err).Warn("Failed to mark message read over websocket")
			return
		}
		h.broadcastToChat(ctx, log, message.ChatID, ws.Message{Type: ws.EventChatMessage, Data: message})
	default:
		log.WithField("type", msg.Type).Debug("Ignoring unknown websocket event")
	}
}
