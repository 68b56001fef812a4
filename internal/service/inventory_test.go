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

type inventoryMocks struct {
	repo     *mocks.MockInventoryRepository
	users    *mocks.MockUserRepository
	notifier *mocks.MockNotifier
}

// newTestInventoryService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestInventoryService(t *testing.T) (InventoryService, *inventoryMocks) {
	ctrl := gomock.NewController(t)
	m := &inventoryMocks{
		repo:     mocks.NewMockInventoryRepository(ctrl),
		users:    mocks.NewMockUserRepository(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewInventoryService(m.repo, m.users, m.notifier, logger)
	return service, m
}

func TestCreateRequisition_NotifiesManagers(t *testing.T) {
	// Подготовка
	service, m := newTestInventoryService(t)
	ctx := context.Background()
	items := []*models.RequisitionItem{
		{InventoryItemID: 3, Quantity: 2},
	}

	// Ожидания
	m.users.EXPECT().GetUserByID(ctx, int64(1)).
		Return(&models.User{ID: 1, FirstName: "Dana", LastName: "Roy"}, nil)
	m.repo.EXPECT().GetItemByID(ctx, int64(3)).
		Return(&models.InventoryItem{ID: 3, Name: "Bandage", Quantity: 10}, nil)
	m.repo.EXPECT().CreateRequisition(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req *models.Requisition) error {
		assert.Equal(t, models.RequisitionPending, req.Status)
		req.ID = 7
		return nil
	})

	// Менеджеры склада получают уведомление, сам заявитель - нет
	m.users.EXPECT().
		ListUsersByRoles(ctx, []models.RoleName{models.RoleInventoryManager, models.RoleSuperAdmin}).
		Return([]*models.User{{ID: 1}, {ID: 8}}, nil)
	m.notifier.EXPECT().
		Notify(ctx, int64(8), models.NotificationInventory, gomock.Nil(), gomock.Any(), gomock.Any(), gomock.Any())

	m.repo.EXPECT().CreateLog(ctx, gomock.Any()).Return(nil)

	// Действие
	requisition, err := service.CreateRequisition(ctx, 1, items)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(7), requisition.ID)
}

func TestCreateRequisition_RejectsEmptyList(t *testing.T) {
	// Подготовка
	service, _ := newTestInventoryService(t)

	// Действие
	_, err := service.CreateRequisition(context.Background(), 1, nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApproveRequisition_RejectsInsufficientStock(t *testing.T) {
	// Подготовка
	service, m := newTestInventoryService(t)
	ctx := context.Background()

	// Ожидания: на складе меньше, чем запрошено
	m.repo.EXPECT().GetRequisitionByID(ctx, int64(7)).Return(&models.Requisition{
		ID:     7,
		UserID: 1,
		Status: models.RequisitionPending,
		Items: []*models.RequisitionItem{
			{InventoryItemID: 3, Quantity: 5},
		},
	}, nil)
	m.repo.EXPECT().GetItemByID(ctx, int64(3)).
		Return(&models.InventoryItem{ID: 3, Name: "Bandage", Quantity: 2}, nil)

	// Действие
	err := service.ApproveRequisition(ctx, 7)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestDispatchRequisition_OnlyApproved(t *testing.T) {
	// Подготовка
	service, m := newTestInventoryService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().GetRequisitionByID(ctx, int64(7)).
		Return(&models.Requisition{ID: 7, UserID: 1, Status: models.RequisitionPending}, nil)

	// Действие
	err := service.DispatchRequisition(ctx, 7)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAcknowledgeRequisition_TransfersStockToKit(t *testing.T) {
	// Подготовка
	service, m := newTestInventoryService(t)
	ctx := context.Background()

	requisition := &models.Requisition{
		ID:     7,
		UserID: 1,
		Status: models.RequisitionDispatched,
		Items: []*models.RequisitionItem{
			{InventoryItemID: 3, Quantity: 2},
		},
	}
	kit := &models.FirstAidKit{
		ID:     4,
		UserID: 1,
		Items: []*models.FirstAidKitItem{
			{ID: 11, KitID: 4, InventoryItemID: 3, Quantity: 1},
		},
	}

	// Ожидания
	m.repo.EXPECT().GetRequisitionByID(ctx, int64(7)).Return(requisition, nil)
	m.repo.EXPECT().GetKitByUserID(ctx, int64(1)).Return(kit, nil)
	m.repo.EXPECT().GetItemByID(ctx, int64(3)).
		Return(&models.InventoryItem{ID: 3, Name: "Bandage", Quantity: 10}, nil)

	// Склад уменьшается, строка аптечки со склада пополняется
	m.repo.EXPECT().SetItemQuantity(ctx, int64(3), 8).Return(nil)
	m.repo.EXPECT().UpdateKitItemQuantity(ctx, int64(11), 3).Return(nil)
	m.repo.EXPECT().CreateLog(ctx, gomock.Any()).Return(nil)
	m.repo.EXPECT().UpdateRequisitionStatus(ctx, int64(7), models.RequisitionAcknowledged).Return(nil)

	// Действие
	err := service.AcknowledgeRequisition(ctx, 7, 1)

	// Проверки
	require.NoError(t, err)
}

func TestAcknowledgeRequisition_OnlyOwner(t *testing.T) {
	// Подготовка
	service, m := newTestInventoryService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().GetRequisitionByID(ctx, int64(7)).
		Return(&models.Requisition{ID: 7, UserID: 1, Status: models.RequisitionDispatched}, nil)

	// Действие: подтверждает другой пользователь
	err := service.AcknowledgeRequisition(ctx, 7, 99)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAcknowledgeRequisition_RevalidatesStock(t *testing.T) {
	// Подготовка
	service, m := newTestInventoryService(t)
	ctx := context.Background()

	requisition := &models.Requisition{
		ID:     7,
		UserID: 1,
		Status: models.RequisitionDispatched,
		Items: []*models.RequisitionItem{
			{InventoryItemID: 3, Quantity: 5},
		},
	}

	// Ожидания: остатки успели разойтись между одобрением и получением
	m.repo.EXPECT().GetRequisitionByID(ctx, int64(7)).Return(requisition, nil)
	m.repo.EXPECT().GetKitByUserID(ctx, int64(1)).
		Return(&models.FirstAidKit{ID: 4, UserID: 1}, nil)
	m.repo.EXPECT().GetItemByID(ctx, int64(3)).
		Return(&models.InventoryItem{ID: 3, Name: "Bandage", Quantity: 1}, nil)

	// Действие
	err := service.AcknowledgeRequisition(ctx, 7, 1)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAddPersonallyProcuredItem_MergesExistingLine(t *testing.T) {
	// Подготовка
	service, m := newTestInventoryService(t)
	ctx := context.Background()

	kit := &models.FirstAidKit{
		ID:     4,
		UserID: 1,
		Items: []*models.FirstAidKitItem{
			{ID: 11, KitID: 4, InventoryItemID: 3, Quantity: 2, PersonallyProcured: true},
		},
	}

	// Ожидания
	m.repo.EXPECT().GetKitByUserID(ctx, int64(1)).Return(kit, nil)
	m.repo.EXPECT().GetItemByID(ctx, int64(3)).
		Return(&models.InventoryItem{ID: 3, Name: "Bandage"}, nil)
	m.repo.EXPECT().UpdateKitItemQuantity(ctx, int64(11), 5).Return(nil)
	m.repo.EXPECT().CreateLog(ctx, gomock.Any()).Return(nil)

	// Действие
	kitItem, err := service.AddPersonallyProcuredItem(ctx, 1, 3, 3)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 5, kitItem.Quantity)
}

func TestUpdateKitItemQuantity_ZeroRemovesLine(t *testing.T) {
	// Подготовка
	service, m := newTestInventoryService(t)
	ctx := context.Background()
	kit := &models.FirstAidKit{ID: 4, UserID: 1}
	kitItem := &models.FirstAidKitItem{ID: 11, KitID: 4, InventoryItemID: 3, Quantity: 2}

	// Ожидания: владение проверяется и при обновлении, и при удалении
	m.repo.EXPECT().GetKitByUserID(ctx, int64(1)).Return(kit, nil).Times(2)
	m.repo.EXPECT().GetKitItemByID(ctx, int64(11)).Return(kitItem, nil).Times(2)
	m.repo.EXPECT().CreateLog(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entry *models.InventoryLog) error {
		assert.Equal(t, "USED_FROM_KIT", entry.Action)
		assert.Equal(t, 2, entry.Quantity)
		return nil
	})
	m.repo.EXPECT().DeleteKitItem(ctx, int64(11)).Return(nil)

	// Действие
	err := service.UpdateKitItemQuantity(ctx, 1, 11, 0)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateKitItemQuantity_ForeignKitRejected(t *testing.T) {
	// Подготовка
	service, m := newTestInventoryService(t)
	ctx := context.Background()

	// Ожидания: строка принадлежит чужой аптечке
	m.repo.EXPECT().GetKitByUserID(ctx, int64(1)).
		Return(&models.FirstAidKit{ID: 4, UserID: 1}, nil)
	m.repo.EXPECT().GetKitItemByID(ctx, int64(11)).
		Return(&models.FirstAidKitItem{ID: 11, KitID: 99, InventoryItemID: 3, Quantity: 2}, nil)

	// Действие
	err := service.UpdateKitItemQuantity(ctx, 1, 11, 1)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteCategory_RejectsCategoryInUse(t *testing.T) {
	// Подготовка
	service, m := newTestInventoryService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().CategoryInUse(ctx, int64(2)).Return(true, nil)

	// Действие
	err := service.DeleteCategory(ctx, 2)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestListRequisitionsByStatus_UnknownStatus(t *testing.T) {
	// Подготовка
	service, _ := newTestInventoryService(t)

	// Действие
	_, err := service.ListRequisitionsByStatus(context.Background(), "SHIPPED")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDashboardStats_AggregatesCounters(t *testing.T) {
	// Подготовка
	service, m := newTestInventoryService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().CountRequisitionsByStatus(ctx, models.RequisitionPending).Return(int64(3), nil)
	m.repo.EXPECT().CountRequisitionsByStatus(ctx, models.RequisitionApproved).Return(int64(1), nil)
	m.repo.EXPECT().CountLowStockItems(ctx).Return(int64(2), nil)

	// Действие
	stats, err := service.DashboardStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.PendingRequisitions)
	assert.Equal(t, int64(1), stats.ReadyForPickup)
	assert.Equal(t, int64(2), stats.LowStockItems)
}
