package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/push"
	"github.com/sirupsen/logrus"
)

// NotificationRepository определяет контракт для работы с бд уведомлений и push-подписок
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListForUser(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID int64) (bool, error)
	MarkAllRead(ctx context.Context, userID int64) (int, error)
	DeleteNotification(ctx context.Context, notificationID, userID int64) (bool, error)
	DeleteAllForUser(ctx context.Context, userID int64) (int, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
	CreateSubscription(ctx context.Context, sub *models.PushSubscription) error
	DeleteSubscriptionByEndpoint(ctx context.Context, endpoint string) error
}

// Notifier - контракт создания уведомлений для других сервисов.
// Ошибки доставки никогда не прерывают основную операцию.
type Notifier interface {
	Notify(ctx context.Context, recipientID int64, notifType models.NotificationType, incidentStatus *models.IncidentStatus, message string, relatedEntityID, triggeringUserID *int64)
}

// NotificationService определяет контракт для бизнес-логики уведомлений
type NotificationService interface {
	Notifier
	ListNotifications(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error)
	MarkAsRead(ctx context.Context, notificationID, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) (int, error)
	DeleteNotification(ctx context.Context, notificationID, userID int64) error
	DeleteAllForUser(ctx context.Context, userID int64) (int, error)
	PurgeOlderThan(ctx context.Context, days int) (int, error)
	Subscribe(ctx context.Context, userID int64, endpoint, p256dh, auth string) error
	Unsubscribe(ctx context.Context, endpoint string) error
}

type notificationService struct {
	repo      NotificationRepository
	publisher push.Publisher
	logger    *logrus.Logger
}

func NewNotificationService(repo NotificationRepository, publisher push.Publisher, logger *logrus.Logger) NotificationService {
	return &notificationService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Notify сохраняет уведомление и ставит Web Push в очередь доставки.
// Любая ошибка логируется и гасится: уведомления не должны ронять основную операцию.
func (s *notificationService) Notify(ctx context.Context, recipientID int64, notifType models.NotificationType, incidentStatus *models.IncidentStatus, message string, relatedEntityID, triggeringUserID *int64) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "notification",
		"method":       "Notify",
		"recipient_id": recipientID,
		"type":         notifType,
	})

	notification := &models.Notification{
		RecipientUserID:  recipientID,
		Message:          message,
		Type:             notifType,
		RelatedEntityID:  relatedEntityID,
		TriggeringUserID: triggeringUserID,
	}
	// Статус инцидента прикладываем только к уведомлениям об инцидентах
	if notifType == models.NotificationIncident {
		notification.IncidentStatus = incidentStatus
	}

	if err := s.repo.CreateNotification(ctx, notification); err != nil {
		log.WithError(err).Error("Failed to create notification")
		return
	}

	event := push.Event{UserID: recipientID, Payload: message}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to enqueue push notification")
	}
}

// ListNotifications возвращает уведомления пользователя, новые первыми
func (s *notificationService) ListNotifications(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	notifications, err := s.repo.ListForUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return notifications, nil
}

// MarkAsRead помечает уведомление прочитанным, проверяя принадлежность пользователю
func (s *notificationService) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	updated, err := s.repo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return fmt.Errorf("service: could not mark notification as read: %w", err)
	}
	if !updated {
		return fmt.Errorf("service: notification %d: %w", notificationID, ErrNotFound)
	}
	return nil
}

// MarkAllAsRead помечает все уведомления пользователя прочитанными
func (s *notificationService) MarkAllAsRead(ctx context.Context, userID int64) (int, error) {
	count, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("service: could not mark all notifications as read: %w", err)
	}
	return count, nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, notificationID, userID int64) error {
	deleted, err := s.repo.DeleteNotification(ctx, notificationID, userID)
	if err != nil {
		return fmt.Errorf("service: could not delete notification: %w", err)
	}
	if !deleted {
		return fmt.Errorf("service: notification %d: %w", notificationID, ErrNotFound)
	}
	return nil
}

func (s *notificationService) DeleteAllForUser(ctx context.Context, userID int64) (int, error) {
	count, err := s.repo.DeleteAllForUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("service: could not delete notifications: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "DeleteAllForUser",
		"user_id": userID,
		"count":   count,
	}).Info("Deleted all notifications for user")
	return count, nil
}

// PurgeOlderThan удаляет уведомления старше указанного количества дней
func (s *notificationService) PurgeOlderThan(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		return 0, fmt.Errorf("service: number of days must be positive: %w", ErrValidation)
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	count, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("service: could not purge old notifications: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "PurgeOlderThan",
		"days":    days,
		"count":   count,
	}).Info("Purged old notifications")
	return count, nil
}

// Subscribe регистрирует push-подписку устройства, идемпотентно по endpoint
func (s *notificationService) Subscribe(ctx context.Context, userID int64, endpoint, p256dh, auth string) error {
	sub := &models.PushSubscription{
		UserID:   userID,
		Endpoint: endpoint,
		P256dh:   p256dh,
		Auth:     auth,
	}
	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		return fmt.Errorf("service: could not create push subscription: %w", err)
	}
	return nil
}

func (s *notificationService) Unsubscribe(ctx context.Context, endpoint string) error {
	if err := s.repo.DeleteSubscriptionByEndpoint(ctx, endpoint); err != nil {
		return fmt.Errorf("service: could not delete push subscription: %w", err)
	}
	return nil
}
