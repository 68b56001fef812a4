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

type assignmentMocks struct {
	teams     *mocks.MockTeamRepository
	cases     *mocks.MockCaseRepository
	incidents *mocks.MockIncidentRepository
	users     *mocks.MockUserRepository
	kits      *mocks.MockKitItemReader
	chats     *mocks.MockChatService
	notifier  *mocks.MockNotifier
}

// newTestAssignmentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAssignmentService(t *testing.T) (AssignmentService, *assignmentMocks) {
	ctrl := gomock.NewController(t)
	m := &assignmentMocks{
		teams:     mocks.NewMockTeamRepository(ctrl),
		cases:     mocks.NewMockCaseRepository(ctrl),
		incidents: mocks.NewMockIncidentRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		kits:      mocks.NewMockKitItemReader(ctrl),
		chats:     mocks.NewMockChatService(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAssignmentService(m.teams, m.cases, m.incidents, m.users, m.kits, m.chats, m.notifier, logger)
	return service, m
}

func fl(v float64) *float64 { return &v }

func availableUser(id int64, lat, lon *float64, level models.ExperienceLevel) *models.User {
	return &models.User{
		ID:                 id,
		FirstName:          "User",
		AvailabilityStatus: models.Available,
		ExperienceLevel:    level,
		Latitude:           lat,
		Longitude:          lon,
	}
}

func TestGetAvailableVolunteers_RankingOrder(t *testing.T) {
	// Подготовка
	service, m := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := int64(10)

	incident := &models.Incident{
		ID:        incidentID,
		Latitude:  fl(0),
		Longitude: fl(0),
		InterestedUsers: []*models.InterestedUser{
			{UserID: 3},
		},
	}

	// Шестой волонтер недоступен и в выдачу попасть не должен
	unavailable := availableUser(7, fl(0.01), fl(0), models.ExperienceExpert)
	unavailable.AvailabilityStatus = models.Unavailable

	users := []*models.User{
		availableUser(1, fl(0.1), fl(0), models.ExperienceBeginner),
		availableUser(2, fl(0.5), fl(0), models.ExperienceExpert),
		availableUser(3, fl(5), fl(5), models.ExperienceBeginner),
		availableUser(4, fl(9), fl(9), models.ExperienceBeginner),
		availableUser(5, nil, nil, models.ExperienceExpert),
		availableUser(6, nil, nil, models.ExperienceBeginner),
		unavailable,
	}

	// Ожидания
	m.incidents.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)
	m.users.EXPECT().ListUsers(ctx).Return(users, nil)
	m.cases.EXPECT().ListActiveTeamMemberIDs(ctx, incidentID).Return([]int64{2}, nil)
	m.incidents.EXPECT().ListCaseHistory(ctx, incidentID).Return([]*models.CaseHistory{
		{Members: []*models.TeamMember{{UserID: 4}}},
	}, nil)

	// Действие
	volunteers, err := service.GetAvailableVolunteers(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	require.Len(t, volunteers, 6)

	// Работавшие по инциденту раньше — первыми, затем заинтересованные,
	// затем ближайшие; без координат — в конце, между собой по опыту
	gotOrder := make([]int64, 0, len(volunteers))
	for _, v := range volunteers {
		gotOrder = append(gotOrder, v.UserID)
	}
	assert.Equal(t, []int64{4, 3, 1, 2, 5, 6}, gotOrder)

	assert.True(t, volunteers[0].HasPreviouslyWorked)
	assert.True(t, volunteers[1].HasShownInterest)
	assert.True(t, volunteers[3].IsEngagedInActiveCase)
	assert.Nil(t, volunteers[4].DistanceFromIncident)
	assert.NotNil(t, volunteers[2].DistanceFromIncident)
}

func TestTeamMemberHash_OrderIndependent(t *testing.T) {
	// Отпечаток состава не зависит от порядка участников
	first := teamMemberHash([]int64{3, 1, 2})
	second := teamMemberHash([]int64{2, 3, 1})

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, teamMemberHash([]int64{1, 2}))
}

func TestFindOrCreateTeam_ReusesExistingLineup(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	teams := mocks.NewMockTeamRepository(ctrl)
	ctx := context.Background()
	existing := &models.Team{ID: 5, Name: "Team Howlers", MemberHash: teamMemberHash([]int64{1, 2})}

	// Ожидания
	teams.EXPECT().
		FindTeamByMemberHash(ctx, teamMemberHash([]int64{1, 2})).
		Return(existing, nil)

	// Действие: тот же состав в другом порядке
	team, err := findOrCreateTeam(ctx, teams, []int64{2, 1})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, existing, team)
}

func TestFindOrCreateTeam_NewTeamNameFromSequence(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	teams := mocks.NewMockTeamRepository(ctrl)
	ctx := context.Background()
	userIDs := []int64{8, 9}
	expectedName := "Team " + teamNames[3%int64(len(teamNames))]

	// Ожидания
	teams.EXPECT().FindTeamByMemberHash(ctx, teamMemberHash(userIDs)).Return(nil, ErrNotFound)
	teams.EXPECT().NextTeamNameSeq(ctx).Return(int64(3), nil)
	teams.EXPECT().CreateTeam(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, team *models.Team) error {
		assert.Equal(t, expectedName, team.Name)
		assert.Equal(t, teamMemberHash(userIDs), team.MemberHash)
		require.Len(t, team.Members, 2)
		team.ID = 42
		return nil
	})
	teams.EXPECT().GetTeamByID(ctx, int64(42)).Return(&models.Team{ID: 42, Name: expectedName}, nil)

	// Действие
	team, err := findOrCreateTeam(ctx, teams, userIDs)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), team.ID)
	assert.Equal(t, expectedName, team.Name)
}

func TestAssignTeam_ReplacesPreviousActiveCase(t *testing.T) {
	// Подготовка
	service, m := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := int64(10)
	assignerID := int64(9)
	userIDs := []int64{1, 2}
	oldChatID := "old-chat"

	incident := &models.Incident{ID: incidentID, Status: models.StatusReported}
	team := &models.Team{
		ID:   5,
		Name: "Team Howlers",
		Members: []*models.TeamMember{
			{UserID: 1}, {UserID: 2},
		},
	}

	// Ожидания
	m.incidents.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)
	m.users.EXPECT().GetUserByID(ctx, assignerID).Return(&models.User{ID: assignerID, FirstName: "Dana"}, nil)
	m.users.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1}, nil)
	m.users.EXPECT().GetUserByID(ctx, int64(2)).Return(&models.User{ID: 2}, nil)

	// Старый активный выезд сносится вместе с чатом
	m.cases.EXPECT().GetActiveCaseByIncident(ctx, incidentID).
		Return(&models.RescueCase{ID: 77, ChatGroupID: &oldChatID}, nil)
	m.cases.EXPECT().DeleteCase(ctx, int64(77)).Return(nil)
	m.chats.EXPECT().DeleteChatGroupAndData(ctx, oldChatID).Return(nil)
	m.cases.EXPECT().DeactivateCases(ctx, incidentID).Return(nil)

	m.teams.EXPECT().FindTeamByMemberHash(ctx, teamMemberHash(userIDs)).Return(team, nil)
	m.chats.EXPECT().
		CreateChatGroup(ctx, "Team Howlers - Incident #10", models.PurposeIncident, gomock.Any(), userIDs).
		Return(&models.ChatGroup{ID: "new-chat"}, nil)
	m.cases.EXPECT().CreateCase(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rescueCase *models.RescueCase) error {
		assert.Equal(t, incidentID, rescueCase.IncidentID)
		assert.Equal(t, int64(5), rescueCase.TeamID)
		assert.True(t, rescueCase.IsActive)
		rescueCase.ID = 78
		return nil
	})
	m.incidents.EXPECT().UpdateStatus(ctx, incidentID, models.StatusAssigned, nil).Return(nil)

	// Уведомления обоим участникам и назначившему
	m.notifier.EXPECT().
		Notify(ctx, gomock.Any(), models.NotificationIncident, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(3)

	// Действие
	assigned, err := service.AssignTeam(ctx, incidentID, userIDs, assignerID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(78), assigned.CaseID)
	assert.Equal(t, "Team Howlers", assigned.TeamName)
	assert.Equal(t, "new-chat", assigned.ChatGroupID)
}

func TestAssignTeam_EmptyTeamRejected(t *testing.T) {
	// Подготовка
	service, _ := newTestAssignmentService(t)

	// Действие
	_, err := service.AssignTeam(context.Background(), 10, nil, 9)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetTeamKitItems_OnlyMedicineBoxHolders(t *testing.T) {
	// Подготовка
	service, m := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := int64(10)

	team := &models.Team{
		ID: 5,
		Members: []*models.TeamMember{
			{UserID: 1}, {UserID: 2},
		},
	}

	// Ожидания
	m.cases.EXPECT().GetActiveCaseByIncident(ctx, incidentID).Return(&models.RescueCase{TeamID: 5}, nil)
	m.teams.EXPECT().GetTeamByID(ctx, int64(5)).Return(team, nil)
	m.users.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, HasMedicineBox: true}, nil)
	m.users.EXPECT().GetUserByID(ctx, int64(2)).Return(&models.User{ID: 2, HasMedicineBox: false}, nil)
	m.kits.EXPECT().ListKitItemNamesByUsers(ctx, []int64{1}).Return([]string{"Bandage", "Saline"}, nil)

	// Действие
	items, err := service.GetTeamKitItems(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{"Bandage", "Saline"}, items)
}
