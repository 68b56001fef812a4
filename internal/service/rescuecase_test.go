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

type rescueCaseMocks struct {
	cases     *mocks.MockCaseRepository
	teams     *mocks.MockTeamRepository
	incidents *mocks.MockIncidentRepository
	users     *mocks.MockUserRepository
	chats     *mocks.MockChatService
	notifier  *mocks.MockNotifier
}

// newTestRescueCaseService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestRescueCaseService(t *testing.T) (RescueCaseService, *rescueCaseMocks) {
	ctrl := gomock.NewController(t)
	m := &rescueCaseMocks{
		cases:     mocks.NewMockCaseRepository(ctrl),
		teams:     mocks.NewMockTeamRepository(ctrl),
		incidents: mocks.NewMockIncidentRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		chats:     mocks.NewMockChatService(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewRescueCaseService(m.cases, m.teams, m.incidents, m.users, m.chats, m.notifier, logger)
	return service, m
}

func assignedTeam() *models.Team {
	return &models.Team{
		ID:   5,
		Name: "Team Howlers",
		Members: []*models.TeamMember{
			{UserID: 1}, {UserID: 2},
		},
	}
}

func TestConfirmInitiation_FullTeamKeepsCase(t *testing.T) {
	// Подготовка
	service, m := newTestRescueCaseService(t)
	ctx := context.Background()
	incidentID := int64(10)

	// Ожидания
	m.incidents.EXPECT().GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, Status: models.StatusAssigned}, nil)
	m.cases.EXPECT().GetActiveCaseByIncident(ctx, incidentID).
		Return(&models.RescueCase{ID: 77, TeamID: 5}, nil)
	m.teams.EXPECT().GetTeamByID(ctx, int64(5)).Return(assignedTeam(), nil)
	m.users.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, FirstName: "Dana"}, nil)

	// Полный состав: старый выезд остается, меняется только статус
	m.incidents.EXPECT().UpdateStatus(ctx, incidentID, models.StatusInProgress, nil).Return(nil)
	m.notifier.EXPECT().
		Notify(ctx, gomock.Any(), models.NotificationIncident, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(2)

	// Действие
	err := service.ConfirmInitiation(ctx, incidentID, []int64{1, 2}, 1)

	// Проверки
	require.NoError(t, err)
}

func TestConfirmInitiation_SubsetRebuildsCase(t *testing.T) {
	// Подготовка
	service, m := newTestRescueCaseService(t)
	ctx := context.Background()
	incidentID := int64(10)
	oldChatID := "old-chat"

	// Ожидания
	m.incidents.EXPECT().GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, Status: models.StatusAssigned}, nil)
	m.cases.EXPECT().GetActiveCaseByIncident(ctx, incidentID).
		Return(&models.RescueCase{ID: 77, TeamID: 5, ChatGroupID: &oldChatID}, nil)
	m.teams.EXPECT().GetTeamByID(ctx, int64(5)).Return(assignedTeam(), nil)
	m.users.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, FirstName: "Dana"}, nil)

	// Выехала часть команды: старый выезд закрывается вместе с чатом
	m.cases.EXPECT().CloseCase(ctx, int64(77), nil).Return(nil)
	m.chats.EXPECT().DeleteChatGroupAndData(ctx, oldChatID).Return(nil)
	m.cases.EXPECT().DetachChatGroup(ctx, int64(77)).Return(nil)

	// Для фактического состава собирается новый выезд
	m.teams.EXPECT().FindTeamByMemberHash(ctx, teamMemberHash([]int64{1})).
		Return(&models.Team{ID: 6, Name: "Team Growlers"}, nil)
	m.chats.EXPECT().
		CreateChatGroup(ctx, "Team Growlers - Incident #10 (Active)", models.PurposeIncident, gomock.Any(), []int64{1}).
		Return(&models.ChatGroup{ID: "new-chat"}, nil)
	m.cases.EXPECT().CreateCase(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rescueCase *models.RescueCase) error {
		assert.Equal(t, int64(6), rescueCase.TeamID)
		assert.Equal(t, int64(1), rescueCase.AssignedByUserID)
		assert.True(t, rescueCase.IsActive)
		return nil
	})
	m.incidents.EXPECT().UpdateStatus(ctx, incidentID, models.StatusInProgress, nil).Return(nil)
	m.notifier.EXPECT().
		Notify(ctx, int64(1), models.NotificationIncident, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	// Действие
	err := service.ConfirmInitiation(ctx, incidentID, []int64{1}, 1)

	// Проверки
	require.NoError(t, err)
}

func TestConfirmInitiation_InitiatorOutsideTeam(t *testing.T) {
	// Подготовка
	service, m := newTestRescueCaseService(t)
	ctx := context.Background()
	incidentID := int64(10)

	// Ожидания
	m.incidents.EXPECT().GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, Status: models.StatusAssigned}, nil)
	m.cases.EXPECT().GetActiveCaseByIncident(ctx, incidentID).
		Return(&models.RescueCase{ID: 77, TeamID: 5}, nil)
	m.teams.EXPECT().GetTeamByID(ctx, int64(5)).Return(assignedTeam(), nil)

	// Действие: инициатор не входит в назначенную команду
	err := service.ConfirmInitiation(ctx, incidentID, []int64{1}, 99)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestConfirmInitiation_ParticipantOutsideTeam(t *testing.T) {
	// Подготовка
	service, m := newTestRescueCaseService(t)
	ctx := context.Background()
	incidentID := int64(10)

	// Ожидания
	m.incidents.EXPECT().GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, Status: models.StatusAssigned}, nil)
	m.cases.EXPECT().GetActiveCaseByIncident(ctx, incidentID).
		Return(&models.RescueCase{ID: 77, TeamID: 5}, nil)
	m.teams.EXPECT().GetTeamByID(ctx, int64(5)).Return(assignedTeam(), nil)

	// Действие: в фактическом составе посторонний пользователь
	err := service.ConfirmInitiation(ctx, incidentID, []int64{1, 99}, 1)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestConfirmInitiation_RequiresAssignedStatus(t *testing.T) {
	// Подготовка
	service, m := newTestRescueCaseService(t)
	ctx := context.Background()
	incidentID := int64(10)

	// Ожидания
	m.incidents.EXPECT().GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, Status: models.StatusInProgress}, nil)

	// Действие
	err := service.ConfirmInitiation(ctx, incidentID, []int64{1}, 1)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCloseCase_RewardsInterestedMembersMore(t *testing.T) {
	// Подготовка
	service, m := newTestRescueCaseService(t)
	ctx := context.Background()
	incidentID := int64(10)

	incident := &models.Incident{
		ID:     incidentID,
		Status: models.StatusInProgress,
		InterestedUsers: []*models.InterestedUser{
			{UserID: 1},
		},
	}
	details := &models.CaseCompletionDetails{ResolutionNotes: "Cat rescued from the roof"}

	// Ожидания
	m.cases.EXPECT().GetActiveCaseByIncident(ctx, incidentID).
		Return(&models.RescueCase{ID: 77, TeamID: 5}, nil)
	m.incidents.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)
	m.teams.EXPECT().GetTeamByID(ctx, int64(5)).Return(assignedTeam(), nil)

	m.users.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1}, nil)
	m.users.EXPECT().GetUserByID(ctx, int64(2)).Return(&models.User{ID: 2}, nil)

	// Заинтересованный заранее получает 5 очков и сердце, остальные по 4 очка
	m.users.EXPECT().ApplyCaseReward(ctx, int64(1), 5, 1, 0.0).Return(nil)
	m.users.EXPECT().ApplyCaseReward(ctx, int64(2), 4, 0, 0.0).Return(nil)

	m.cases.EXPECT().CloseCase(ctx, int64(77), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, notes *string) error {
			require.NotNil(t, notes)
			assert.Equal(t, "Cat rescued from the roof", *notes)
			return nil
		})
	m.incidents.EXPECT().UpdateStatus(ctx, incidentID, models.StatusOngoing, nil).Return(nil)
	m.incidents.EXPECT().IncrementCaseCount(ctx, incidentID).Return(nil)
	m.teams.EXPECT().IncrementCaseCount(ctx, int64(5)).Return(nil)
	m.incidents.EXPECT().RemoveAllInterests(ctx, incidentID).Return(nil)

	m.notifier.EXPECT().
		Notify(ctx, int64(1), models.NotificationRewards, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	m.notifier.EXPECT().
		Notify(ctx, int64(2), models.NotificationRewards, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	// Действие
	err := service.CloseCase(ctx, incidentID, details, nil)

	// Проверки
	require.NoError(t, err)
}
