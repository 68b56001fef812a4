package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type incidentMocks struct {
	repo     *mocks.MockIncidentRepository
	users    *mocks.MockUserRepository
	chats    *mocks.MockChatTeardown
	storage  *mocks.MockMediaStorage
	notifier *mocks.MockNotifier
}

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (IncidentService, *incidentMocks) {
	ctrl := gomock.NewController(t)
	m := &incidentMocks{
		repo:     mocks.NewMockIncidentRepository(ctrl),
		users:    mocks.NewMockUserRepository(ctrl),
		chats:    mocks.NewMockChatTeardown(ctrl),
		storage:  mocks.NewMockMediaStorage(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewIncidentService(m.repo, m.users, m.chats, m.storage, m.notifier, logger)
	return service, m
}

func TestReportIncident_SavesMediaAndReturnsFresh(t *testing.T) {
	// Подготовка
	service, m := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{
		InformerName:  "Priya",
		ContactNumber: "+911234567890",
		AnimalType:    models.AnimalDog,
	}
	media := []*models.IncidentMedia{
		{FilePath: "photo.jpg", MediaType: models.MediaImage},
	}

	// Ожидания
	m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inc *models.Incident) error {
		assert.Equal(t, models.StatusReported, inc.Status)
		inc.ID = 10
		return nil
	})
	m.repo.EXPECT().AddMedia(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, item *models.IncidentMedia) error {
		assert.Equal(t, int64(10), item.IncidentID)
		return nil
	})
	m.repo.EXPECT().GetByID(ctx, int64(10)).
		Return(&models.Incident{ID: 10, Status: models.StatusReported}, nil)

	// Рассылка волонтерам идет в фоне и может не успеть до конца теста
	m.users.EXPECT().ListUsers(gomock.Any()).Return(nil, nil).AnyTimes()

	// Действие
	created, err := service.ReportIncident(ctx, incident, media)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestUpdateLocation_RejectsOutOfRangeCoordinates(t *testing.T) {
	// Подготовка
	service, _ := newTestIncidentService(t)

	// Действие
	_, err := service.UpdateLocation(context.Background(), 10, 91.0, 0)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInitiate_OnlyFromAssigned(t *testing.T) {
	// Подготовка
	service, m := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, int64(10)).
		Return(&models.Incident{ID: 10, Status: models.StatusReported}, nil)

	// Действие
	err := service.Initiate(ctx, 10)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestInitiate_Success(t *testing.T) {
	// Подготовка
	service, m := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, int64(10)).
		Return(&models.Incident{ID: 10, Status: models.StatusAssigned}, nil)
	m.repo.EXPECT().UpdateStatus(ctx, int64(10), models.StatusInProgress, nil).Return(nil)

	// Действие
	err := service.Initiate(ctx, 10)

	// Проверки
	require.NoError(t, err)
}

func TestResolve_OnlyFromOngoing(t *testing.T) {
	// Подготовка
	service, m := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, int64(10)).
		Return(&models.Incident{ID: 10, Status: models.StatusReported}, nil)

	// Действие
	err := service.Resolve(ctx, 10)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestResolve_Success(t *testing.T) {
	// Подготовка
	service, m := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, int64(10)).
		Return(&models.Incident{ID: 10, Status: models.StatusOngoing}, nil)
	m.repo.EXPECT().UpdateStatus(ctx, int64(10), models.StatusResolved, nil).Return(nil)

	// Действие
	err := service.Resolve(ctx, 10)

	// Проверки
	require.NoError(t, err)
}

func TestClose_RequiresReason(t *testing.T) {
	// Подготовка
	service, _ := newTestIncidentService(t)

	// Действие
	err := service.Close(context.Background(), 10, "   ")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClose_StoresClosingReason(t *testing.T) {
	// Подготовка
	service, m := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, int64(10)).
		Return(&models.Incident{ID: 10, Status: models.StatusReported}, nil)
	m.repo.EXPECT().UpdateStatus(ctx, int64(10), models.StatusClosed, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ models.IncidentStatus, reason *string) error {
			require.NotNil(t, reason)
			assert.Equal(t, "False alarm", *reason)
			return nil
		})

	// Действие
	err := service.Close(ctx, 10, "False alarm")

	// Проверки
	require.NoError(t, err)
}

func TestReactivate_OnlyFromResolved(t *testing.T) {
	// Подготовка
	service, m := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, int64(10)).
		Return(&models.Incident{ID: 10, Status: models.StatusClosed}, nil)

	// Действие
	err := service.Reactivate(ctx, 10)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestDeleteIncident_RequiresTerminalStatus(t *testing.T) {
	// Подготовка
	service, m := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, int64(10)).
		Return(&models.Incident{ID: 10, Status: models.StatusInProgress}, nil)

	// Действие
	err := service.DeleteIncident(ctx, 10, false)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestDeleteIncident_ArchivesAndCleansUp(t *testing.T) {
	// Подготовка
	service, m := newTestIncidentService(t)
	ctx := context.Background()
	notes := "Rescued and released"
	incident := &models.Incident{
		ID:            10,
		InformerName:  "Priya",
		ContactNumber: "+911234567890",
		AnimalType:    models.AnimalCat,
		Status:        models.StatusResolved,
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, int64(10)).Return(incident, nil)

	// Снимок в архив собирается из истории выездов
	m.repo.EXPECT().ListCaseHistory(ctx, int64(10)).Return([]*models.CaseHistory{
		{
			ResolutionNotes: &notes,
			Members: []*models.TeamMember{
				{UserID: 1, FirstName: "Dana", LastName: "Roy"},
			},
		},
	}, nil)
	m.repo.EXPECT().CreateArchive(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, archive *models.IncidentArchive) error {
		assert.Equal(t, int64(10), archive.OriginalIncidentID)
		assert.Equal(t, "RESOLVED", archive.FinalStatus)
		assert.Equal(t, "Rescued and released", archive.ResolutionNotes)
		assert.Equal(t, "Dana Roy", archive.InvolvedMembers)
		return nil
	})

	m.repo.EXPECT().ListMediaByIncident(ctx, int64(10)).Return([]*models.IncidentMedia{
		{ID: 3, IncidentID: 10, FilePath: "photo.jpg"},
	}, nil)
	m.storage.EXPECT().Delete("photo.jpg").Return(nil)
	m.repo.EXPECT().DeleteAllMedia(ctx, int64(10)).Return(nil)
	m.repo.EXPECT().RemoveAllInterests(ctx, int64(10)).Return(nil)
	m.repo.EXPECT().GetCaseChatGroupIDs(ctx, int64(10)).Return([]string{"chat-1"}, nil)
	m.chats.EXPECT().DeleteChatGroupAndData(ctx, "chat-1").Return(nil)
	m.repo.EXPECT().Delete(ctx, int64(10)).Return(nil)

	// Действие
	err := service.DeleteIncident(ctx, 10, true)

	// Проверки
	require.NoError(t, err)
}

func TestDeleteMediaItem_RejectsForeignMedia(t *testing.T) {
	// Подготовка
	service, m := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().GetMediaByID(ctx, int64(3)).
		Return(&models.IncidentMedia{ID: 3, IncidentID: 99, FilePath: "photo.jpg"}, nil)

	// Действие: медиафайл принадлежит другому инциденту
	err := service.DeleteMediaItem(ctx, 10, 3)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
