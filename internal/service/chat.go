package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pawsome-ngo/rescue-backend/internal/config"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/push"
	"github.com/sirupsen/logrus"
)

// ChatRepository определяет контракт для работы с бд чатов
type ChatRepository interface {
	CreateGroup(ctx context.Context, group *models.ChatGroup) error
	GetGroupByID(ctx context.Context, chatID string) (*models.ChatGroup, error)
	DeleteGroup(ctx context.Context, chatID string) error
	AddParticipant(ctx context.Context, chatID string, userID int64) error
	ListParticipants(ctx context.Context, chatID string) ([]*models.ChatParticipant, error)
	IsParticipant(ctx context.Context, chatID string, userID int64) (bool, error)
	ListChatPreviews(ctx context.Context, userID int64) ([]*models.ChatPreview, error)
	SaveMessage(ctx context.Context, message *models.ChatMessage) error
	GetMessageByID(ctx context.Context, messageID string) (*models.ChatMessage, error)
	ListMessages(ctx context.Context, chatID string) ([]*models.ChatMessage, error)
	DeleteMessage(ctx context.Context, messageID string) error
	ReplaceReaction(ctx context.Context, messageID string, userID int64, reaction string) error
	AddReadReceipt(ctx context.Context, messageID string, userID int64) error
}

// ChatService определяет контракт для бизнес-логики чатов
type ChatService interface {
	CreateChatGroup(ctx context.Context, name string, purpose models.ChatPurpose, purposeID *int64, userIDs []int64) (*models.ChatGroup, error)
	DeleteChatGroupAndData(ctx context.Context, chatGroupID string) error
	AddUserToChatGroup(ctx context.Context, chatID string, userID int64) error
	GetChatPreviews(ctx context.Context, userID int64) ([]*models.ChatPreview, error)
	GetMessages(ctx context.Context, chatID string) ([]*models.ChatMessage, error)
	ListParticipants(ctx context.Context, chatID string) ([]*models.ChatParticipant, error)
	IsParticipant(ctx context.Context, chatID string, userID int64) (bool, error)
	SaveMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error)
	AddReaction(ctx context.Context, messageID string, userID int64, reaction string) (*models.ChatMessage, error)
	MarkAsRead(ctx context.Context, messageID string, userID int64) (*models.ChatMessage, error)
}

// Регулярные выражения упоминаний. Голое "@", "@?!." и "@Everyone" в любом
// регистре адресуют всех участников, "@имя" - конкретного участника.
var (
	everyoneMentionRe = regexp.MustCompile(`(?i)@everyone|@[?!.]+(?:\s|$)|@(?:\s|$)`)
	nameMentionRe     = regexp.MustCompile(`@(\w+)`)
)

type chatService struct {
	repo      ChatRepository
	users     UserRepository
	storage   MediaStorage
	publisher push.Publisher
	cfg       *config.Config
	logger    *logrus.Logger
}

func NewChatService(repo ChatRepository, users UserRepository, storage MediaStorage, publisher push.Publisher, cfg *config.Config, logger *logrus.Logger) ChatService {
	return &chatService{
		repo:      repo,
		users:     users,
		storage:   storage,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// CreateChatGroup создает чат-группу с указанными участниками
func (s *chatService) CreateChatGroup(ctx context.Context, name string, purpose models.ChatPurpose, purposeID *int64, userIDs []int64) (*models.ChatGroup, error) {
	for _, userID := range userIDs {
		if _, err := s.users.GetUserByID(ctx, userID); err != nil {
			return nil, fmt.Errorf("service: could not get chat participant %d: %w", userID, err)
		}
	}

	group := &models.ChatGroup{
		ID:        uuid.NewString(),
		Name:      name,
		Purpose:   purpose,
		PurposeID: purposeID,
	}
	if err := s.repo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("service: could not create chat group: %w", err)
	}
	for _, userID := range userIDs {
		if err := s.repo.AddParticipant(ctx, group.ID, userID); err != nil {
			return nil, fmt.Errorf("service: could not add chat participant: %w", err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"service":       "chat",
		"method":        "CreateChatGroup",
		"chat_group_id": group.ID,
		"participants":  len(userIDs),
	}).Info("Created chat group")
	return group, nil
}

// DeleteChatGroupAndData удаляет чат со всеми сообщениями, реакциями,
// отметками прочтения, участниками и медиафайлами сообщений
func (s *chatService) DeleteChatGroupAndData(ctx context.Context, chatGroupID string) error {
	if chatGroupID == "" {
		return nil
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":       "chat",
		"method":        "DeleteChatGroupAndData",
		"chat_group_id": chatGroupID,
	})
	log.Warn("Deleting all data for chat group")

	messages, err := s.repo.ListMessages(ctx, chatGroupID)
	if err != nil {
		return fmt.Errorf("service: could not list chat messages: %w", err)
	}
	for _, message := range messages {
		if message.MediaURL == nil || *message.MediaURL == "" {
			continue
		}
		filename, ok := uploadFilename(*message.MediaURL)
		if !ok {
			log.WithField("media_url", *message.MediaURL).Warn("Media URL format not recognized for deletion")
			continue
		}
		if err := s.storage.Delete(filename); err != nil {
			log.WithError(err).WithField("message_id", message.ID).Error("Error deleting media file for message")
		}
	}

	if err := s.repo.DeleteGroup(ctx, chatGroupID); err != nil {
		return fmt.Errorf("service: could not delete chat group: %w", err)
	}
	log.Info("Successfully deleted chat group and data")
	return nil
}

// uploadFilename извлекает имя файла из ссылки вида /api/uploads/<имя>
func uploadFilename(mediaURL string) (string, bool) {
	const prefix = "/api/uploads/"
	if !strings.HasPrefix(mediaURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(mediaURL, prefix), true
}

// AddUserToChatGroup добавляет пользователя в чат, повторное добавление не ошибка
func (s *chatService) AddUserToChatGroup(ctx context.Context, chatID string, userID int64) error {
	if _, err := s.repo.GetGroupByID(ctx, chatID); err != nil {
		return fmt.Errorf("service: could not get chat group: %w", err)
	}
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return fmt.Errorf("service: could not get user: %w", err)
	}
	if err := s.repo.AddParticipant(ctx, chatID, userID); err != nil {
		return fmt.Errorf("service: could not add chat participant: %w", err)
	}
	return nil
}

// GetChatPreviews возвращает чаты пользователя, свежие сверху
func (s *chatService) GetChatPreviews(ctx context.Context, userID int64) ([]*models.ChatPreview, error) {
	previews, err := s.repo.ListChatPreviews(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list chat previews: %w", err)
	}
	return previews, nil
}

func (s *chatService) GetMessages(ctx context.Context, chatID string) ([]*models.ChatMessage, error) {
	if _, err := s.repo.GetGroupByID(ctx, chatID); err != nil {
		return nil, fmt.Errorf("service: could not get chat group: %w", err)
	}
	messages, err := s.repo.ListMessages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list chat messages: %w", err)
	}
	return messages, nil
}

func (s *chatService) ListParticipants(ctx context.Context, chatID string) ([]*models.ChatParticipant, error) {
	participants, err := s.repo.ListParticipants(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list chat participants: %w", err)
	}
	return participants, nil
}

func (s *chatService) IsParticipant(ctx context.Context, chatID string, userID int64) (bool, error) {
	ok, err := s.repo.IsParticipant(ctx, chatID, userID)
	if err != nil {
		return false, fmt.Errorf("service: could not check chat participant: %w", err)
	}
	return ok, nil
}

// SaveMessage сохраняет сообщение и рассылает Web Push упомянутым участникам
func (s *chatService) SaveMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "chat",
		"method":    "SaveMessage",
		"chat_id":   message.ChatID,
		"sender_id": message.SenderID,
	})

	group, err := s.repo.GetGroupByID(ctx, message.ChatID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get chat group: %w", err)
	}
	sender, err := s.users.GetUserByID(ctx, message.SenderID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get sender: %w", err)
	}

	text := ""
	if message.Text != nil {
		text = *message.Text
	}
	if strings.TrimSpace(text) == "" && message.MediaURL == nil {
		return nil, fmt.Errorf("service: cannot save an empty message: %w", ErrValidation)
	}
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		message.Text = &trimmed
	} else {
		message.Text = nil
	}

	message.ID = uuid.NewString()
	if err := s.repo.SaveMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("service: could not save message: %w", err)
	}
	log.WithField("message_id", message.ID).Info("Saved chat message")

	if text != "" {
		s.notifyMentions(ctx, group, sender, message, text)
	}

	return s.repo.GetMessageByID(ctx, message.ID)
}

// notifyMentions определяет адресатов упоминаний и ставит им Web Push в очередь
func (s *chatService) notifyMentions(ctx context.Context, group *models.ChatGroup, sender *models.User, message *models.ChatMessage, text string) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "chat",
		"method":     "notifyMentions",
		"chat_id":    group.ID,
		"message_id": message.ID,
	})

	// Упоминания в общем чате будят всю организацию, поэтому их push
	// включается отдельным флагом конфигурации
	if group.Purpose == models.PurposeGlobal && !s.cfg.GlobalChatPushEnabled {
		log.Debug("Global chat push is disabled, skipping mention notifications")
		return
	}

	participants, err := s.repo.ListParticipants(ctx, group.ID)
	if err != nil {
		log.WithError(err).Error("Failed to list participants for mention notifications")
		return
	}

	targets := mentionTargets(text, participants, sender.ID)
	if len(targets) == 0 {
		log.Debug("No users to notify for message")
		return
	}

	content := text
	if message.MediaType != nil {
		content = fmt.Sprintf("%s [%s]", text, strings.ToLower(string(*message.MediaType)))
	}
	payload := fmt.Sprintf("@%s (%s): %s", sender.FirstName, group.Name, content)

	log.WithField("target_count", len(targets)).Info("Sending push notifications for chat mentions")
	for _, userID := range targets {
		if err := s.publisher.Publish(ctx, push.Event{UserID: userID, Payload: payload}); err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Failed to enqueue mention push")
		}
	}
}

// mentionTargets возвращает идентификаторы участников, адресованных
// упоминаниями в тексте. Отправитель никогда не адресуется.
func mentionTargets(text string, participants []*models.ChatParticipant, senderID int64) []int64 {
	var targets []int64

	if everyoneMentionRe.MatchString(text) {
		for _, p := range participants {
			if p.UserID != senderID {
				targets = append(targets, p.UserID)
			}
		}
		return targets
	}

	mentioned := make(map[string]bool)
	for _, match := range nameMentionRe.FindAllStringSubmatch(text, -1) {
		name := strings.ToLower(match[1])
		if name != "everyone" {
			mentioned[name] = true
		}
	}
	if len(mentioned) == 0 {
		return nil
	}

	for _, p := range participants {
		if p.UserID == senderID {
			continue
		}
		if mentioned[strings.ToLower(p.FirstName)] {
			targets = append(targets, p.UserID)
		}
	}
	return targets
}

// AddReaction заменяет реакцию пользователя на сообщении и возвращает
// обновленное сообщение
func (s *chatService) AddReaction(ctx context.Context, messageID string, userID int64, reaction string) (*models.ChatMessage, error) {
	if _, err := s.repo.GetMessageByID(ctx, messageID); err != nil {
		return nil, fmt.Errorf("service: could not get message: %w", err)
	}
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	if err := s.repo.ReplaceReaction(ctx, messageID, userID, reaction); err != nil {
		return nil, fmt.Errorf("service: could not save reaction: %w", err)
	}
	return s.repo.GetMessageByID(ctx, messageID)
}

// MarkAsRead идемпотентно отмечает сообщение прочитанным
func (s *chatService) MarkAsRead(ctx context.Context, messageID string, userID int64) (*models.ChatMessage, error) {
	if _, err := s.repo.GetMessageByID(ctx, messageID); err != nil {
		return nil, fmt.Errorf("service: could not get message: %w", err)
	}
	if err := s.repo.AddReadReceipt(ctx, messageID, userID); err != nil {
		return nil, fmt.Errorf("service: could not save read receipt: %w", err)
	}
	return s.repo.GetMessageByID(ctx, messageID)
}
