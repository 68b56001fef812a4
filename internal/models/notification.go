package models

import (
	"time"
)

// NotificationType - тип уведомления
type NotificationType string

const (
	NotificationIncident  NotificationType = "INCIDENT"
	NotificationInventory NotificationType = "INVENTORY"
	NotificationApproval  NotificationType = "APPROVAL"
	NotificationRewards   NotificationType = "REWARDS"
	NotificationGeneral   NotificationType = "GENERAL"
)

type Notification struct {
	ID                 int64            `json:"id"`
	RecipientUserID    int64            `json:"recipient_user_id"`
	Message            string           `json:"message"`
	Type               NotificationType `json:"type"`
	IncidentStatus     *IncidentStatus  `json:"incident_status,omitempty"`
	RelatedEntityID    *int64           `json:"related_entity_id,omitempty"`
	TriggeringUserID   *int64           `json:"triggering_user_id,omitempty"`
	TriggeringUserName string           `json:"triggering_user_name,omitempty"`
	IsRead             bool             `json:"is_read"`
	CreatedAt          time.Time        `json:"created_at"`
}

// PushSubscription - подписка браузера на Web Push
type PushSubscription struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Endpoint  string    `json:"endpoint"`
	P256dh    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	CreatedAt time.Time `json:"created_at"`
}
