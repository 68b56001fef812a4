package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/pawsome-ngo/rescue-backend/internal/config"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/push"
	pushmocks "github.com/pawsome-ngo/rescue-backend/internal/push/mocks"
	"github.com/pawsome-ngo/rescue-backend/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chatTestMocks struct {
	repo      *mocks.MockChatRepository
	users     *mocks.MockUserRepository
	storage   *mocks.MockMediaStorage
	publisher *pushmocks.MockPublisher
}

// newTestChatService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestChatService(t *testing.T, cfg *config.Config) (ChatService, *chatTestMocks) {
	ctrl := gomock.NewController(t)
	m := &chatTestMocks{
		repo:      mocks.NewMockChatRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		storage:   mocks.NewMockMediaStorage(ctrl),
		publisher: pushmocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewChatService(m.repo, m.users, m.storage, m.publisher, cfg, logger)
	return service, m
}

func chatParticipants() []*models.ChatParticipant {
	return []*models.ChatParticipant{
		{ChatID: "chat-1", UserID: 1, FirstName: "Dana"},
		{ChatID: "chat-1", UserID: 2, FirstName: "Priya"},
		{ChatID: "chat-1", UserID: 3, FirstName: "Arjun"},
	}
}

func TestMentionTargets_ByName(t *testing.T) {
	targets := mentionTargets("@Priya have a look", chatParticipants(), 1)

	assert.Equal(t, []int64{2}, targets)
}

func TestMentionTargets_CaseInsensitive(t *testing.T) {
	targets := mentionTargets("@priya @ARJUN urgent", chatParticipants(), 1)

	assert.Equal(t, []int64{2, 3}, targets)
}

func TestMentionTargets_EveryoneAddressesAllButSender(t *testing.T) {
	targets := mentionTargets("@everyone meeting at 5", chatParticipants(), 2)

	assert.Equal(t, []int64{1, 3}, targets)
}

func TestMentionTargets_BareAtAddressesEveryone(t *testing.T) {
	targets := mentionTargets("@ who can take this one?", chatParticipants(), 3)

	assert.Equal(t, []int64{1, 2}, targets)
}

func TestMentionTargets_NoMention(t *testing.T) {
	targets := mentionTargets("just a plain message", chatParticipants(), 1)

	assert.Empty(t, targets)
}

func TestSaveMessage_RejectsEmptyText(t *testing.T) {
	// Подготовка
	service, m := newTestChatService(t, &config.Config{})
	ctx := context.Background()
	text := "   "
	message := &models.ChatMessage{ChatID: "chat-1", SenderID: 1, Text: &text}

	// Ожидания
	m.repo.EXPECT().GetGroupByID(ctx, "chat-1").
		Return(&models.ChatGroup{ID: "chat-1", Purpose: models.PurposeIncident}, nil)
	m.users.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, FirstName: "Dana"}, nil)

	// Действие
	_, err := service.SaveMessage(ctx, message)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveMessage_MentionQueuesPush(t *testing.T) {
	// Подготовка
	service, m := newTestChatService(t, &config.Config{})
	ctx := context.Background()
	text := "@Priya cat spotted near the gate"
	message := &models.ChatMessage{ChatID: "chat-1", SenderID: 1, Text: &text}

	// Ожидания
	m.repo.EXPECT().GetGroupByID(ctx, "chat-1").
		Return(&models.ChatGroup{ID: "chat-1", Name: "Team Howlers - Incident #10", Purpose: models.PurposeIncident}, nil)
	m.users.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, FirstName: "Dana"}, nil)
	m.repo.EXPECT().SaveMessage(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg *models.ChatMessage) error {
		assert.NotEmpty(t, msg.ID)
		return nil
	})
	m.repo.EXPECT().ListParticipants(ctx, "chat-1").Return(chatParticipants(), nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, event push.Event) error {
		assert.Equal(t, int64(2), event.UserID)
		assert.Contains(t, event.Payload, "@Dana (Team Howlers - Incident #10)")
		assert.Contains(t, event.Payload, "cat spotted near the gate")
		return nil
	})
	m.repo.EXPECT().GetMessageByID(ctx, gomock.Any()).
		Return(&models.ChatMessage{ChatID: "chat-1", SenderID: 1, Text: &text}, nil)

	// Действие
	saved, err := service.SaveMessage(ctx, message)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "chat-1", saved.ChatID)
}

func TestSaveMessage_GlobalChatPushDisabled(t *testing.T) {
	// Подготовка: push для общего чата выключен флагом конфигурации
	service, m := newTestChatService(t, &config.Config{GlobalChatPushEnabled: false})
	ctx := context.Background()
	text := "@everyone adoption drive this weekend"
	message := &models.ChatMessage{ChatID: models.GlobalChatID, SenderID: 1, Text: &text}

	// Ожидания: публикатор не вызывается вовсе
	m.repo.EXPECT().GetGroupByID(ctx, models.GlobalChatID).
		Return(&models.ChatGroup{ID: models.GlobalChatID, Name: "Pawsome Family", Purpose: models.PurposeGlobal}, nil)
	m.users.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, FirstName: "Dana"}, nil)
	m.repo.EXPECT().SaveMessage(ctx, gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	m.repo.EXPECT().GetMessageByID(ctx, gomock.Any()).
		Return(&models.ChatMessage{ChatID: models.GlobalChatID, SenderID: 1, Text: &text}, nil)

	// Действие
	_, err := service.SaveMessage(ctx, message)

	// Проверки
	require.NoError(t, err)
}

func TestDeleteChatGroupAndData_RemovesMessageMedia(t *testing.T) {
	// Подготовка
	service, m := newTestChatService(t, &config.Config{})
	ctx := context.Background()
	mediaURL := "/api/uploads/photo.jpg"

	// Ожидания
	m.repo.EXPECT().ListMessages(ctx, "chat-1").Return([]*models.ChatMessage{
		{ID: "msg-1", ChatID: "chat-1", MediaURL: &mediaURL},
		{ID: "msg-2", ChatID: "chat-1"},
	}, nil)
	m.storage.EXPECT().Delete("photo.jpg").Return(nil)
	m.repo.EXPECT().DeleteGroup(ctx, "chat-1").Return(nil)

	// Действие
	err := service.DeleteChatGroupAndData(ctx, "chat-1")

	// Проверки
	require.NoError(t, err)
}

func TestDeleteChatGroupAndData_EmptyIDIsNoop(t *testing.T) {
	// Подготовка
	service, _ := newTestChatService(t, &config.Config{})

	// Действие
	err := service.DeleteChatGroupAndData(context.Background(), "")

	// Проверки
	require.NoError(t, err)
}
