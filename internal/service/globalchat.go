package service

import (
	"context"
	"fmt"

	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// GlobalChatService определяет контракт для общего чата организации.
// Общий чат - единственная группа с фиксированным идентификатором,
// в которую попадает каждый одобренный волонтер.
type GlobalChatService interface {
	AddUser(ctx context.Context, userID int64) error
	GetMessages(ctx context.Context) ([]*models.ChatMessage, error)
	SendMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error)
	ClearMessages(ctx context.Context, messagesToKeep int) (int, error)
}

type globalChatService struct {
	chats   ChatService
	repo    ChatRepository
	storage MediaStorage
	logger  *logrus.Logger
}

func NewGlobalChatService(chats ChatService, repo ChatRepository, storage MediaStorage, logger *logrus.Logger) GlobalChatService {
	return &globalChatService{
		chats:   chats,
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// AddUser добавляет пользователя в общий чат
func (s *globalChatService) AddUser(ctx context.Context, userID int64) error {
	if err := s.chats.AddUserToChatGroup(ctx, models.GlobalChatID, userID); err != nil {
		return fmt.Errorf("service: could not add user to global chat: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service": "globalchat",
		"method":  "AddUser",
		"user_id": userID,
	}).Info("Added user to global chat")
	return nil
}

func (s *globalChatService) GetMessages(ctx context.Context) ([]*models.ChatMessage, error) {
	return s.chats.GetMessages(ctx, models.GlobalChatID)
}

// SendMessage отправляет сообщение в общий чат
func (s *globalChatService) SendMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error) {
	message.ChatID = models.GlobalChatID
	return s.chats.SaveMessage(ctx, message)
}

// ClearMessages удаляет из общего чата все сообщения, кроме указанного
// количества последних, вместе с их медиафайлами
func (s *globalChatService) ClearMessages(ctx context.Context, messagesToKeep int) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "globalchat",
		"method":  "ClearMessages",
		"keep":    messagesToKeep,
	})

	if messagesToKeep < 0 {
		return 0, fmt.Errorf("service: number of messages to keep must be non-negative: %w", ErrValidation)
	}

	messages, err := s.repo.ListMessages(ctx, models.GlobalChatID)
	if err != nil {
		return 0, fmt.Errorf("service: could not list global chat messages: %w", err)
	}
	if len(messages) <= messagesToKeep {
		log.Info("Not enough messages to clear, keeping all")
		return 0, nil
	}

	// Сообщения отсортированы от старых к новым
	toDelete := messages[:len(messages)-messagesToKeep]
	deleted := 0
	for _, message := range toDelete {
		if message.MediaURL != nil && *message.MediaURL != "" {
			if filename, ok := uploadFilename(*message.MediaURL); ok {
				if err := s.storage.Delete(filename); err != nil {
					log.WithError(err).WithField("message_id", message.ID).Error("Error deleting media file for message")
				}
			}
		}
		if err := s.repo.DeleteMessage(ctx, message.ID); err != nil {
			log.WithError(err).WithField("message_id", message.ID).Error("Error deleting global chat message")
			continue
		}
		deleted++
	}

	log.WithField("deleted", deleted).Info("Cleared global chat messages")
	return deleted, nil
}
