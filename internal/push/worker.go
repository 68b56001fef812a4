package push

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pawsome-ngo/rescue-backend/internal/config"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SubscriptionStore - контракт доступа к push-подпискам получателей
type SubscriptionStore interface {
	ListSubscriptionsByUser(ctx context.Context, userID int64) ([]*models.PushSubscription, error)
	DeleteSubscriptionByEndpoint(ctx context.Context, endpoint string) error
}

// Worker - структура для обработки очереди и отправки Web Push
type Worker struct {
	redisClient *redis.Client
	store       SubscriptionStore
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, store SubscriptionStore, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		store:       store,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start запускает горутину для обработки очереди push-уведомлений
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting push worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping push worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, pushQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop push event from Redis")
					time.Sleep(w.cfg.PushBaseDelay) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				var event Event
				if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal push event from Redis")
					continue
				}

				w.processPushEvent(ctx, event)
			}
		}
	}()
}

func (w *Worker) processPushEvent(ctx context.Context, event Event) {
	log := w.logger.WithField("event_user_id", event.UserID)
	log.Debug("Processing push event...")

	if w.cfg.VAPIDPublicKey == "" || w.cfg.VAPIDPrivateKey == "" {
		log.Warn("VAPID keys are not configured. Skipping push delivery.")
		return
	}

	subscriptions, err := w.store.ListSubscriptionsByUser(ctx, event.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load push subscriptions for event")
		return
	}
	if len(subscriptions) == 0 {
		log.Debug("No push subscriptions for user. Skipping push delivery.")
		return
	}

	for _, sub := range subscriptions {
		w.deliverToSubscription(ctx, event, sub, log)
	}
}

func (w *Worker) deliverToSubscription(ctx context.Context, event Event, sub *models.PushSubscription, log *logrus.Entry) {
	subscription := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}
	options := &webpush.Options{
		Subscriber:      w.cfg.VAPIDSubject,
		VAPIDPublicKey:  w.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: w.cfg.VAPIDPrivateKey,
		TTL:             60,
	}

	maxRetries := w.cfg.PushMaxRetries
	baseDelay := w.cfg.PushBaseDelay

	for i := 0; i < maxRetries; i++ {
		resp, err := webpush.SendNotificationWithContext(ctx, []byte(event.Payload), subscription, options)
		if err != nil {
			log.WithError(err).Warnf("Failed to send push notification. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Debug("Push notification delivered successfully.")
			return
		}

		// Подписка протухла или отозвана - удаляем и больше не пытаемся
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
			log.WithField("endpoint", sub.Endpoint).Info("Push subscription is expired or revoked. Removing it.")
			if err := w.store.DeleteSubscriptionByEndpoint(ctx, sub.Endpoint); err != nil {
				log.WithError(err).Error("Failed to remove expired push subscription")
			}
			return
		}

		log.Warnf("Push delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver push notification after %d retries.", maxRetries)
}
