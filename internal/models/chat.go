package models

import (
	"time"
)

// ChatPurpose - назначение чат-группы
type ChatPurpose string

const (
	PurposeIncident ChatPurpose = "INCIDENT"
	PurposeGlobal   ChatPurpose = "GLOBAL"
)

// GlobalChatID - фиксированный идентификатор общего чата организации
const GlobalChatID = "global"

type ChatGroup struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Purpose   ChatPurpose `json:"purpose"`
	PurposeID *int64      `json:"purpose_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// ChatParticipant - участник чат-группы
type ChatParticipant struct {
	ChatID    string `json:"chat_id"`
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ChatMessage struct {
	ID              string     `json:"id"`
	ChatID          string     `json:"chat_id"`
	SenderID        int64      `json:"sender_id"`
	SenderFirstName string     `json:"sender_first_name,omitempty"`
	SenderLastName  string     `json:"sender_last_name,omitempty"`
	Text            *string    `json:"text,omitempty"`
	ClientMessageID *string    `json:"client_message_id,omitempty"`
	ParentMessageID *string    `json:"parent_message_id,omitempty"`
	MediaURL        *string    `json:"media_url,omitempty"`
	MediaType       *MediaType `json:"media_type,omitempty"`
	Timestamp       time.Time  `json:"timestamp"`

	Reactions map[string][]*ChatUser `json:"reactions,omitempty"`
	SeenBy    []*ChatUser            `json:"seen_by,omitempty"`
}

// ChatUser - краткая информация об участнике для реакций и отметок прочтения
type ChatUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ChatReaction - реакция пользователя на сообщение, одна на пользователя
type ChatReaction struct {
	MessageID string `json:"message_id"`
	UserID    int64  `json:"user_id"`
	Reaction  string `json:"reaction"`
}

// ChatPreview - чат в списке чатов пользователя
type ChatPreview struct {
	ChatID               string     `json:"chat_id"`
	Name                 string     `json:"name"`
	PurposeID            *int64     `json:"purpose_id,omitempty"`
	LastMessage          *string    `json:"last_message,omitempty"`
	LastMessageTimestamp *time.Time `json:"last_message_timestamp,omitempty"`
	HasUnreadMessages    bool       `json:"has_unread_messages"`
}
