package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/ws"
	"github.com/sirupsen/logrus"
)

// @Summary List own chats
// @Description List the user's chats with last-message previews, freshest first
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ChatPreview
// @Router /chats [get]
func (h *Handler) listChats(c *gin.Context) {
	log := h.logger.WithField("method", "listChats")

	previews, err := h.chatService.GetChatPreviews(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, previews)
}

// requireParticipant проверяет, что пользователь состоит в чате
func (h *Handler) requireParticipant(c *gin.Context, log *logrus.Entry, chatID string) bool {
	ok, err := h.chatService.IsParticipant(c.Request.Context(), chatID, currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return false
	}
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not a participant of this chat"})
		return false
	}
	return true
}

// @Summary List chat messages
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param chatId path string true "Chat ID"
// @Success 200 {array} models.ChatMessage
// @Failure 403 {object} map[string]string "Not a chat participant"
// @Failure 404 {object} map[string]string "Chat not found"
// @Router /chats/{chatId}/messages [get]
func (h *Handler) listChatMessages(c *gin.Context) {
	chatID := c.Param("chatId")
	log := h.logger.WithField("method", "listChatMessages").WithField("chat_id", chatID)

	if !h.requireParticipant(c, log, chatID) {
		return
	}
	messages, err := h.chatService.GetMessages(c.Request.Context(), chatID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// @Summary List chat participants
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param chatId path string true "Chat ID"
// @Success 200 {array} models.ChatParticipant
// @Failure 403 {object} map[string]string "Not a chat participant"
// @Router /chats/{chatId}/participants [get]
func (h *Handler) listChatParticipants(c *gin.Context) {
	chatID := c.Param("chatId")
	log := h.logger.WithField("method", "listChatParticipants").WithField("chat_id", chatID)

	if !h.requireParticipant(c, log, chatID) {
		return
	}
	participants, err := h.chatService.ListParticipants(c.Request.Context(), chatID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

// bindChatMessage разбирает тело сообщения: JSON или multipart-форма
// с JSON-частью "payload" и одним файлом "media"
func (h *Handler) bindChatMessage(c *gin.Context, log *logrus.Entry, chatID string) (*models.ChatMessage, bool) {
	var input SendMessageRequest

	message := &models.ChatMessage{
		ChatID:   chatID,
		SenderID: currentUserID(c),
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if payload := c.PostForm("payload"); payload != "" {
			if err := json.Unmarshal([]byte(payload), &input); err != nil {
				log.WithError(err).Warn("Failed to parse multipart payload")
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload part"})
				return nil, false
			}
		}
		fileHeader, err := c.FormFile("media")
		if err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				log.WithError(err).Error("Failed to open uploaded media")
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media file"})
				return nil, false
			}
			defer file.Close()
			filename, err := h.storage.Save(file, fileHeader.Filename)
			if err != nil {
				log.WithError(err).Error("Failed to store uploaded media")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store media"})
				return nil, false
			}
			mediaURL := "/api/uploads/" + filename
			mediaType := mediaTypeFor(filename)
			message.MediaURL = &mediaURL
			message.MediaType = &mediaType
		}
	} else if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}

	message.Text = input.Text
	message.ClientMessageID = input.ClientMessageID
	message.ParentMessageID = input.ParentMessageID
	return message, true
}

// broadcastToChat рассылает событие всем участникам чата через WebSocket
func (h *Handler) broadcastToChat(ctx context.Context, log *logrus.Entry, chatID string, message ws.Message) {
	if h.broadcaster == nil {
		return
	}
	participants, err := h.chatService.ListParticipants(ctx, chatID)
	if err != nil {
		log.WithError(err).Error("Failed to list participants for websocket broadcast")
		return
	}
	userIDs := make([]int64, 0, len(participants))
	for _, p := range participants {
		userIDs = append(userIDs, p.UserID)
	}
	if err := h.broadcaster.Publish(ctx, userIDs, message); err != nil {
		log.WithError(err).Error("Failed to publish websocket event")
	}
}

// @Summary Send a chat message
// @Description Send a message with text and/or media. Accepts JSON or a multipart form with a "payload" JSON part and a "media" file.
// @Tags Chat
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param chatId path string true "Chat ID"
// @Param message body SendMessageRequest true "Message"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} map[string]string "Empty message"
// @Failure 403 {object} map[string]string "Not a chat participant"
// @Router /chats/{chatId}/messages [post]
func (h *Handler) sendChatMessage(c *gin.Context) {
	chatID := c.Param("chatId")
	log := h.logger.WithField("method", "sendChatMessage").WithField("chat_id", chatID)

	if !h.requireParticipant(c, log, chatID) {
		return
	}
	message, ok := h.bindChatMessage(c, log, chatID)
	if !ok {
		return
	}

	saved, err := h.chatService.SaveMessage(c.Request.Context(), message)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.broadcastToChat(c.Request.Context(), log, chatID, ws.Message{Type: ws.EventChatMessage, Data: saved})
	c.JSON(http.StatusCreated, saved)
}

// @Summary React to a message
// @Description Set the user's reaction on a message, replacing any previous one
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param messageId path string true "Message ID"
// @Param reaction body ReactionRequest true "Reaction"
// @Success 200 {object} models.ChatMessage
// @Failure 404 {object} map[string]string "Message not found"
// @Router /chats/messages/{messageId}/reactions [post]
func (h *Handler) addReaction(c *gin.Context) {
	messageID := c.Param("messageId")
	log := h.logger.WithField("method", "addReaction").WithField("message_id", messageID)

	var input ReactionRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	message, err := h.chatService.AddReaction(c.Request.Context(), messageID, currentUserID(c), input.Reaction)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.broadcastToChat(c.Request.Context(), log, message.ChatID, ws.Message{Type: ws.EventChatMessage, Data: message})
	c.JSON(http.StatusOK, message)
}

// @Summary Mark a message as read
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param messageId path string true "Message ID"
// @Success 200 {object} models.ChatMessage
// @Failure 404 {object} map[string]string "Message not found"
// @Router /chats/messages/{messageId}/read [post]
func (h *Handler) markMessageRead(c *gin.Context) {
	messageID := c.Param("messageId")
	log := h.logger.WithField("method", "markMessageRead").WithField("message_id", messageID)

	message, err := h.chatService.MarkAsRead(c.Request.Context(), messageID, currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

// @Summary List global chat messages
// @Tags GlobalChat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ChatMessage
// @Router /global-chat/messages [get]
func (h *Handler) listGlobalChatMessages(c *gin.Context) {
	log := h.logger.WithField("method", "listGlobalChatMessages")

	messages, err := h.globalChat.GetMessages(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// @Summary Send a message to the global chat
// @Description Send a message to the organization-wide chat. Accepts JSON or a multipart form like the per-chat endpoint.
// @Tags GlobalChat
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param message body SendMessageRequest true "Message"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} map[string]string "Empty message"
// @Router /global-chat/messages [post]
func (h *Handler) sendGlobalChatMessage(c *gin.Context) {
	log := h.logger.WithField("method", "sendGlobalChatMessage")

	message, ok := h.bindChatMessage(c, log, models.GlobalChatID)
	if !ok {
		return
	}
	saved, err := h.globalChat.SendMessage(c.Request.Context(), message)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.broadcastToChat(c.Request.Context(), log, models.GlobalChatID, ws.Message{Type: ws.EventChatMessage, Data: saved})
	c.JSON(http.StatusCreated, saved)
}

// @Summary Clear old global chat messages
// @Description Delete all global chat messages except the most recent ones
// @Tags GlobalChat
// @Produce json
// @Security BearerAuth
// @Param keep query int false "Number of most recent messages to keep" default(100)
// @Success 200 {object} CountResponse
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /global-chat/messages [delete]
func (h *Handler) clearGlobalChatMessages(c *gin.Context) {
	log := h.logger.WithField("method", "clearGlobalChatMessages")
	keep, err := strconv.Atoi(c.DefaultQuery("keep", "100"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid keep parameter"})
		return
	}

	deleted, err := h.globalChat.ClearMessages(c.Request.Context(), keep)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: deleted})
}
