package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
)

// NotificationRepository реализует и service.NotificationRepository,
// и push.SubscriptionStore для воркера доставки
type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (recipient_user_id, message, type, incident_status, related_entity_id, triggering_user_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, is_read, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		notification.RecipientUserID,
		notification.Message,
		notification.Type,
		notification.IncidentStatus,
		notification.RelatedEntityID,
		notification.TriggeringUserID,
	).Scan(&notification.ID, &notification.IsRead, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListForUser возвращает уведомления пользователя, новые первыми
func (r *NotificationRepository) ListForUser(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	query := `
		SELECT n.id, n.recipient_user_id, n.message, n.type, n.incident_status,
			n.related_entity_id, n.triggering_user_id,
			COALESCE(u.first_name || ' ' || u.last_name, ''), n.is_read, n.created_at
		FROM notifications n
		LEFT JOIN users u ON u.id = n.triggering_user_id
		WHERE n.recipient_user_id = $1 AND ($2 = FALSE OR n.is_read = FALSE)
		ORDER BY n.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		notification := &models.Notification{}
		err := rows.Scan(
			&notification.ID,
			&notification.RecipientUserID,
			&notification.Message,
			&notification.Type,
			&notification.IncidentStatus,
			&notification.RelatedEntityID,
			&notification.TriggeringUserID,
			&notification.TriggeringUserName,
			&notification.IsRead,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID, userID int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_user_id = $2;`,
		notificationID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int, error) {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE recipient_user_id = $1 AND is_read = FALSE;`,
		userID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", err)
	}
	return int(cmdTag.RowsAffected()), nil
}

func (r *NotificationRepository) DeleteNotification(ctx context.Context, notificationID, userID int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND recipient_user_id = $2;`,
		notificationID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete notification: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *NotificationRepository) DeleteAllForUser(ctx context.Context, userID int64) (int, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE recipient_user_id = $1;`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", err)
	}
	return int(cmdTag.RowsAffected()), nil
}

func (r *NotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE created_at < $1;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old notifications: %w", err)
	}
	return int(cmdTag.RowsAffected()), nil
}

// CreateSubscription регистрирует push-подписку, идемпотентно по endpoint
func (r *NotificationRepository) CreateSubscription(ctx context.Context, sub *models.PushSubscription) error {
	query := `
		INSERT INTO push_subscriptions (user_id, endpoint, p256dh, auth)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (endpoint) DO UPDATE SET user_id = EXCLUDED.user_id, p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, sub.UserID, sub.Endpoint, sub.P256dh, sub.Auth).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create push subscription: %w", err)
	}
	return nil
}

func (r *NotificationRepository) DeleteSubscriptionByEndpoint(ctx context.Context, endpoint string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM push_subscriptions WHERE endpoint = $1;`, endpoint); err != nil {
		return fmt.Errorf("failed to delete push subscription: %w", err)
	}
	return nil
}

// ListSubscriptionsByUser возвращает все push-подписки устройств пользователя
func (r *NotificationRepository) ListSubscriptionsByUser(ctx context.Context, userID int64) ([]*models.PushSubscription, error) {
	query := `SELECT id, user_id, endpoint, p256dh, auth, created_at FROM push_subscriptions WHERE user_id = $1;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list push subscriptions: %w", err)
	}
	defer rows.Close()

	subs := make([]*models.PushSubscription, 0)
	for rows.Next() {
		sub := &models.PushSubscription{}
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.Endpoint, &sub.P256dh, &sub.Auth, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan push subscription row: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return subs, nil
}
