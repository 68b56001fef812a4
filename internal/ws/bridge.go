package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// wsEventsChannel - канал Redis Pub/Sub для пересылки WebSocket-событий
// между экземплярами сервиса
const wsEventsChannel = "ws_events"

// Bridge пересылает WebSocket-события через Redis Pub/Sub, чтобы событие,
// опубликованное одним экземпляром, дошло до клиентов всех экземпляров
type Bridge struct {
	hub         *Hub
	redisClient *redis.Client
	logger      *logrus.Logger
}

func NewBridge(hub *Hub, redisClient *redis.Client, logger *logrus.Logger) *Bridge {
	return &Bridge{
		hub:         hub,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Publish отправляет событие указанным пользователям через Redis
func (b *Bridge) Publish(ctx context.Context, userIDs []int64, message Message) error {
	payload, err := json.Marshal(envelope{UserIDs: userIDs, Message: message})
	if err != nil {
		return fmt.Errorf("failed to marshal ws event: %w", err)
	}
	if err := b.redisClient.Publish(ctx, wsEventsChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish ws event: %w", err)
	}
	return nil
}

// Run подписывается на канал событий и доставляет их локальным клиентам
// до отмены контекста
func (b *Bridge) Run(ctx context.Context) {
	log := b.logger.WithFields(logrus.Fields{
		"service": "ws",
		"method":  "Bridge.Run",
	})

	pubsub := b.redisClient.Subscribe(ctx, wsEventsChannel)
	defer pubsub.Close()
	log.Info("WebSocket bridge subscribed to Redis channel")

	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Info("WebSocket bridge stopped")
			return
		case msg, ok := <-channel:
			if !ok {
				if !errors.Is(ctx.Err(), context.Canceled) {
					log.Error("Redis pubsub channel closed unexpectedly")
				}
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.WithError(err).Error("Failed to unmarshal ws event")
				continue
			}
			b.hub.SendToUsers(env.UserIDs, env.Message)
		}
	}
}
