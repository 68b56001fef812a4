package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// Действия, фиксируемые в журнале движения инвентаря
const (
	logActionRequested         = "REQUESTED"
	logActionApproved          = "APPROVED"
	logActionDenied            = "DENIED"
	logActionDispatched        = "DISPATCHED"
	logActionAcknowledged      = "ACKNOWLEDGED"
	logActionUsedFromKit       = "USED_FROM_KIT"
	logActionPersonallyAdded   = "PERSONALLY_PROCURED_ADD"
	logActionPersonallyUpdated = "PERSONALLY_PROCURED_UPDATE"
	logActionAddedToStock      = "ADDED_TO_STOCK"
)

// InventoryRepository определяет контракт для работы с бд инвентаря
type InventoryRepository interface {
	ListCategories(ctx context.Context) ([]*models.ItemCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.ItemCategory, error)
	CreateCategory(ctx context.Context, category *models.ItemCategory) error
	UpdateCategory(ctx context.Context, category *models.ItemCategory) error
	DeleteCategory(ctx context.Context, id int64) error
	CategoryInUse(ctx context.Context, id int64) (bool, error)

	ListItems(ctx context.Context) ([]*models.InventoryItem, error)
	GetItemByID(ctx context.Context, id int64) (*models.InventoryItem, error)
	CreateItem(ctx context.Context, item *models.InventoryItem) error
	UpdateItem(ctx context.Context, item *models.InventoryItem) error
	SetItemQuantity(ctx context.Context, id int64, quantity int) error
	DeleteItemData(ctx context.Context, id int64) error
	CountLowStockItems(ctx context.Context) (int64, error)

	GetKitByUserID(ctx context.Context, userID int64) (*models.FirstAidKit, error)
	CreateKit(ctx context.Context, userID int64) (*models.FirstAidKit, error)
	GetKitItemByID(ctx context.Context, id int64) (*models.FirstAidKitItem, error)
	AddKitItem(ctx context.Context, item *models.FirstAidKitItem) error
	UpdateKitItemQuantity(ctx context.Context, id int64, quantity int) error
	DeleteKitItem(ctx context.Context, id int64) error
	ListKitHolderNames(ctx context.Context, inventoryItemID int64) ([]string, error)
	ListKitItemNamesByUsers(ctx context.Context, userIDs []int64) ([]string, error)

	CreateRequisition(ctx context.Context, requisition *models.Requisition) error
	GetRequisitionByID(ctx context.Context, id int64) (*models.Requisition, error)
	ListRequisitionsByUserAndStatuses(ctx context.Context, userID int64, statuses []models.RequisitionStatus) ([]*models.Requisition, error)
	ListRequisitionsByStatus(ctx context.Context, status models.RequisitionStatus) ([]*models.Requisition, error)
	UpdateRequisitionStatus(ctx context.Context, id int64, status models.RequisitionStatus) error
	CountRequisitionsByStatus(ctx context.Context, status models.RequisitionStatus) (int64, error)

	CreateLog(ctx context.Context, log *models.InventoryLog) error
	ListLogs(ctx context.Context) ([]*models.InventoryLog, error)
}

// InventoryService определяет контракт для бизнес-логики инвентаря:
// склад, личные аптечки волонтеров и заявки на выдачу
type InventoryService interface {
	ListItems(ctx context.Context) ([]*models.InventoryItem, error)
	CreateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)
	DeleteItem(ctx context.Context, id int64) error
	GetItemUsage(ctx context.Context, itemID int64) (*models.ItemUsage, error)

	ListCategories(ctx context.Context) ([]*models.ItemCategory, error)
	CreateCategory(ctx context.Context, category *models.ItemCategory) (*models.ItemCategory, error)
	UpdateCategory(ctx context.Context, category *models.ItemCategory) (*models.ItemCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	GetFirstAidKit(ctx context.Context, userID int64) (*models.FirstAidKit, error)
	AddPersonallyProcuredItem(ctx context.Context, userID, inventoryItemID int64, quantity int) (*models.FirstAidKitItem, error)
	UpdateKitItemQuantity(ctx context.Context, userID, kitItemID int64, newQuantity int) error
	RemoveKitItem(ctx context.Context, userID, kitItemID int64) error

	CreateRequisition(ctx context.Context, userID int64, items []*models.RequisitionItem) (*models.Requisition, error)
	ApproveRequisition(ctx context.Context, requisitionID int64) error
	DenyRequisition(ctx context.Context, requisitionID int64) error
	DispatchRequisition(ctx context.Context, requisitionID int64) error
	AcknowledgeRequisition(ctx context.Context, requisitionID, userID int64) error
	ListOpenRequisitions(ctx context.Context, userID int64) ([]*models.Requisition, error)
	ListRequisitionsByStatus(ctx context.Context, status string) ([]*models.Requisition, error)

	DashboardStats(ctx context.Context) (*models.InventoryDashboardStats, error)
	ListLogs(ctx context.Context) ([]*models.InventoryLog, error)

	KitItemReader
}

type inventoryService struct {
	repo     InventoryRepository
	users    UserRepository
	notifier Notifier
	logger   *logrus.Logger
}

func NewInventoryService(repo InventoryRepository, users UserRepository, notifier Notifier, logger *logrus.Logger) InventoryService {
	return &inventoryService{
		repo:     repo,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *inventoryService) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list inventory items: %w", err)
	}
	return items, nil
}

// CreateItem добавляет новую позицию на склад и фиксирует приход в журнале
func (s *inventoryService) CreateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if _, err := s.repo.GetCategoryByID(ctx, item.CategoryID); err != nil {
		return nil, fmt.Errorf("service: could not get item category: %w", err)
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("service: could not create inventory item: %w", err)
	}
	s.writeLog(ctx, item.ID, nil, logActionAddedToStock, item.Quantity)
	return item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if _, err := s.repo.GetItemByID(ctx, item.ID); err != nil {
		return nil, fmt.Errorf("service: could not get inventory item: %w", err)
	}
	if _, err := s.repo.GetCategoryByID(ctx, item.CategoryID); err != nil {
		return nil, fmt.Errorf("service: could not get item category: %w", err)
	}
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("service: could not update inventory item: %w", err)
	}
	return item, nil
}

// DeleteItem удаляет позицию вместе с записями журнала, строками заявок
// и вхождениями в аптечки
func (s *inventoryService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.repo.DeleteItemData(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete inventory item: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service": "inventory",
		"method":  "DeleteItem",
		"item_id": id,
	}).Info("Deleted inventory item with all related data")
	return nil
}

func (s *inventoryService) GetItemUsage(ctx context.Context, itemID int64) (*models.ItemUsage, error) {
	names, err := s.repo.ListKitHolderNames(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list kit holders: %w", err)
	}
	usage := &models.ItemUsage{InUse: len(names) > 0}
	if usage.InUse {
		usage.UserNames = names
	}
	return usage, nil
}

func (s *inventoryService) ListCategories(ctx context.Context) ([]*models.ItemCategory, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list item categories: %w", err)
	}
	return categories, nil
}

func (s *inventoryService) CreateCategory(ctx context.Context, category *models.ItemCategory) (*models.ItemCategory, error) {
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("service: could not create item category: %w", err)
	}
	return category, nil
}

func (s *inventoryService) UpdateCategory(ctx context.Context, category *models.ItemCategory) (*models.ItemCategory, error) {
	if _, err := s.repo.GetCategoryByID(ctx, category.ID); err != nil {
		return nil, fmt.Errorf("service: could not get item category: %w", err)
	}
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("service: could not update item category: %w", err)
	}
	return category, nil
}

// DeleteCategory удаляет категорию, если в ней нет позиций
func (s *inventoryService) DeleteCategory(ctx context.Context, id int64) error {
	inUse, err := s.repo.CategoryInUse(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not check category usage: %w", err)
	}
	if inUse {
		return fmt.Errorf("service: cannot delete category: it is currently in use by inventory items: %w", ErrInvalidState)
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete item category: %w", err)
	}
	return nil
}

// GetFirstAidKit возвращает аптечку пользователя, создавая пустую при
// первом обращении
func (s *inventoryService) GetFirstAidKit(ctx context.Context, userID int64) (*models.FirstAidKit, error) {
	kit, err := s.getOrCreateKit(ctx, userID)
	if err != nil {
		return nil, err
	}
	return kit, nil
}

// AddPersonallyProcuredItem добавляет в аптечку предмет, купленный
// волонтером за свой счет. Повторное добавление того же предмета
// увеличивает количество существующей строки.
func (s *inventoryService) AddPersonallyProcuredItem(ctx context.Context, userID, inventoryItemID int64, quantity int) (*models.FirstAidKitItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("service: quantity must be positive: %w", ErrValidation)
	}
	kit, err := s.getOrCreateKit(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetItemByID(ctx, inventoryItemID); err != nil {
		return nil, fmt.Errorf("service: could not get inventory item: %w", err)
	}

	for _, kitItem := range kit.Items {
		if kitItem.InventoryItemID == inventoryItemID && kitItem.PersonallyProcured {
			kitItem.Quantity += quantity
			if err := s.repo.UpdateKitItemQuantity(ctx, kitItem.ID, kitItem.Quantity); err != nil {
				return nil, fmt.Errorf("service: could not update kit item: %w", err)
			}
			s.writeLog(ctx, inventoryItemID, &userID, logActionPersonallyUpdated, quantity)
			return kitItem, nil
		}
	}

	newItem := &models.FirstAidKitItem{
		KitID:              kit.ID,
		InventoryItemID:    inventoryItemID,
		Quantity:           quantity,
		PersonallyProcured: true,
	}
	if err := s.repo.AddKitItem(ctx, newItem); err != nil {
		return nil, fmt.Errorf("service: could not add kit item: %w", err)
	}
	s.writeLog(ctx, inventoryItemID, &userID, logActionPersonallyAdded, quantity)
	return newItem, nil
}

// UpdateKitItemQuantity меняет количество предмета в аптечке. Нулевое
// количество удаляет строку, уменьшение фиксируется как расход.
// Предметы со склада на склад не возвращаются.
func (s *inventoryService) UpdateKitItemQuantity(ctx context.Context, userID, kitItemID int64, newQuantity int) error {
	if newQuantity < 0 {
		return fmt.Errorf("service: quantity cannot be negative: %w", ErrValidation)
	}
	kitItem, err := s.ownedKitItem(ctx, userID, kitItemID)
	if err != nil {
		return err
	}
	if newQuantity == 0 {
		return s.RemoveKitItem(ctx, userID, kitItemID)
	}

	if difference := newQuantity - kitItem.Quantity; difference < 0 {
		s.writeLog(ctx, kitItem.InventoryItemID, &userID, logActionUsedFromKit, -difference)
	}
	if err := s.repo.UpdateKitItemQuantity(ctx, kitItemID, newQuantity); err != nil {
		return fmt.Errorf("service: could not update kit item: %w", err)
	}
	return nil
}

// RemoveKitItem удаляет предмет из аптечки, фиксируя его как
// израсходованный
func (s *inventoryService) RemoveKitItem(ctx context.Context, userID, kitItemID int64) error {
	kitItem, err := s.ownedKitItem(ctx, userID, kitItemID)
	if err != nil {
		return err
	}
	s.writeLog(ctx, kitItem.InventoryItemID, &userID, logActionUsedFromKit, kitItem.Quantity)
	if err := s.repo.DeleteKitItem(ctx, kitItemID); err != nil {
		return fmt.Errorf("service: could not delete kit item: %w", err)
	}
	return nil
}

// ListKitItemNamesByUsers возвращает названия предметов в аптечках
// указанных пользователей
func (s *inventoryService) ListKitItemNamesByUsers(ctx context.Context, userIDs []int64) ([]string, error) {
	names, err := s.repo.ListKitItemNamesByUsers(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("service: could not list kit item names: %w", err)
	}
	return names, nil
}

// CreateRequisition создает заявку на выдачу инвентаря и уведомляет
// менеджеров склада
func (s *inventoryService) CreateRequisition(ctx context.Context, userID int64, items []*models.RequisitionItem) (*models.Requisition, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "inventory",
		"method":  "CreateRequisition",
		"user_id": userID,
	})

	if len(items) == 0 {
		return nil, fmt.Errorf("service: requisition must contain at least one item: %w", ErrValidation)
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("service: quantity must be positive: %w", ErrValidation)
		}
		if _, err := s.repo.GetItemByID(ctx, item.InventoryItemID); err != nil {
			return nil, fmt.Errorf("service: could not get inventory item #%d: %w", item.InventoryItemID, err)
		}
	}

	requisition := &models.Requisition{
		UserID: userID,
		Status: models.RequisitionPending,
		Items:  items,
	}
	if err := s.repo.CreateRequisition(ctx, requisition); err != nil {
		return nil, fmt.Errorf("service: could not create requisition: %w", err)
	}

	s.notifyManagers(ctx, requisition, user)

	for _, item := range requisition.Items {
		s.writeLog(ctx, item.InventoryItemID, &userID, logActionRequested, item.Quantity)
	}

	log.WithField("requisition_id", requisition.ID).Info("Created inventory requisition")
	return requisition, nil
}

// ApproveRequisition одобряет заявку после проверки остатков на складе.
// Остатки при одобрении не списываются - списание происходит при
// подтверждении получения.
func (s *inventoryService) ApproveRequisition(ctx context.Context, requisitionID int64) error {
	requisition, err := s.repo.GetRequisitionByID(ctx, requisitionID)
	if err != nil {
		return fmt.Errorf("service: could not get requisition: %w", err)
	}
	for _, item := range requisition.Items {
		stock, err := s.repo.GetItemByID(ctx, item.InventoryItemID)
		if err != nil {
			return fmt.Errorf("service: could not get inventory item: %w", err)
		}
		if stock.Quantity < item.Quantity {
			return fmt.Errorf("service: cannot approve: not enough stock for '%s', required %d, available %d: %w",
				stock.Name, item.Quantity, stock.Quantity, ErrInvalidState)
		}
	}

	if err := s.repo.UpdateRequisitionStatus(ctx, requisitionID, models.RequisitionApproved); err != nil {
		return fmt.Errorf("service: could not update requisition status: %w", err)
	}

	message := fmt.Sprintf("Your inventory request (#%d) has been approved.", requisition.ID)
	s.notifier.Notify(ctx, requisition.UserID, models.NotificationInventory, nil, message, &requisition.ID, nil)

	for _, item := range requisition.Items {
		s.writeLog(ctx, item.InventoryItemID, &requisition.UserID, logActionApproved, item.Quantity)
	}
	return nil
}

func (s *inventoryService) DenyRequisition(ctx context.Context, requisitionID int64) error {
	requisition, err := s.repo.GetRequisitionByID(ctx, requisitionID)
	if err != nil {
		return fmt.Errorf("service: could not get requisition: %w", err)
	}
	if err := s.repo.UpdateRequisitionStatus(ctx, requisitionID, models.RequisitionDenied); err != nil {
		return fmt.Errorf("service: could not update requisition status: %w", err)
	}

	message := fmt.Sprintf("Your inventory request (#%d) has been denied.", requisition.ID)
	s.notifier.Notify(ctx, requisition.UserID, models.NotificationInventory, nil, message, &requisition.ID, nil)

	for _, item := range requisition.Items {
		s.writeLog(ctx, item.InventoryItemID, &requisition.UserID, logActionDenied, item.Quantity)
	}
	return nil
}

// DispatchRequisition помечает одобренную заявку как выданную
func (s *inventoryService) DispatchRequisition(ctx context.Context, requisitionID int64) error {
	requisition, err := s.repo.GetRequisitionByID(ctx, requisitionID)
	if err != nil {
		return fmt.Errorf("service: could not get requisition: %w", err)
	}
	if requisition.Status != models.RequisitionApproved {
		return fmt.Errorf("service: only approved requisitions can be dispatched: %w", ErrInvalidState)
	}
	if err := s.repo.UpdateRequisitionStatus(ctx, requisitionID, models.RequisitionDispatched); err != nil {
		return fmt.Errorf("service: could not update requisition status: %w", err)
	}

	message := fmt.Sprintf("Your inventory request (#%d) has been dispatched and is ready for pickup/acknowledgement.", requisition.ID)
	s.notifier.Notify(ctx, requisition.UserID, models.NotificationInventory, nil, message, &requisition.ID, nil)

	for _, item := range requisition.Items {
		s.writeLog(ctx, item.InventoryItemID, &requisition.UserID, logActionDispatched, item.Quantity)
	}
	return nil
}

// AcknowledgeRequisition подтверждает получение выданной заявки:
// остатки повторно проверяются, списываются со склада и зачисляются
// в аптечку получателя
func (s *inventoryService) AcknowledgeRequisition(ctx context.Context, requisitionID, userID int64) error {
	requisition, err := s.repo.GetRequisitionByID(ctx, requisitionID)
	if err != nil {
		return fmt.Errorf("service: could not get requisition: %w", err)
	}
	if requisition.UserID != userID {
		return fmt.Errorf("service: you can only acknowledge your own requisitions: %w", ErrForbidden)
	}
	if requisition.Status != models.RequisitionDispatched {
		return fmt.Errorf("service: this requisition has not been dispatched yet: %w", ErrInvalidState)
	}

	kit, err := s.getOrCreateKit(ctx, userID)
	if err != nil {
		return err
	}

	for _, item := range requisition.Items {
		stock, err := s.repo.GetItemByID(ctx, item.InventoryItemID)
		if err != nil {
			return fmt.Errorf("service: could not get inventory item: %w", err)
		}
		if stock.Quantity < item.Quantity {
			return fmt.Errorf("service: not enough stock for '%s' at time of acknowledgement: %w", stock.Name, ErrInvalidState)
		}
		if err := s.repo.SetItemQuantity(ctx, stock.ID, stock.Quantity-item.Quantity); err != nil {
			return fmt.Errorf("service: could not decrement stock: %w", err)
		}

		var existing *models.FirstAidKitItem
		for _, kitItem := range kit.Items {
			if kitItem.InventoryItemID == item.InventoryItemID && !kitItem.PersonallyProcured {
				existing = kitItem
				break
			}
		}
		if existing != nil {
			existing.Quantity += item.Quantity
			if err := s.repo.UpdateKitItemQuantity(ctx, existing.ID, existing.Quantity); err != nil {
				return fmt.Errorf("service: could not update kit item: %w", err)
			}
		} else {
			newItem := &models.FirstAidKitItem{
				KitID:           kit.ID,
				InventoryItemID: item.InventoryItemID,
				Quantity:        item.Quantity,
			}
			if err := s.repo.AddKitItem(ctx, newItem); err != nil {
				return fmt.Errorf("service: could not add kit item: %w", err)
			}
			kit.Items = append(kit.Items, newItem)
		}

		s.writeLog(ctx, item.InventoryItemID, &requisition.UserID, logActionAcknowledged, item.Quantity)
	}

	if err := s.repo.UpdateRequisitionStatus(ctx, requisitionID, models.RequisitionAcknowledged); err != nil {
		return fmt.Errorf("service: could not update requisition status: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":        "inventory",
		"method":         "AcknowledgeRequisition",
		"requisition_id": requisitionID,
		"user_id":        userID,
	}).Info("Requisition acknowledged, stock transferred to first aid kit")
	return nil
}

// ListOpenRequisitions возвращает незакрытые заявки пользователя
func (s *inventoryService) ListOpenRequisitions(ctx context.Context, userID int64) ([]*models.Requisition, error) {
	openStatuses := []models.RequisitionStatus{
		models.RequisitionPending,
		models.RequisitionApproved,
		models.RequisitionDispatched,
	}
	requisitions, err := s.repo.ListRequisitionsByUserAndStatuses(ctx, userID, openStatuses)
	if err != nil {
		return nil, fmt.Errorf("service: could not list requisitions: %w", err)
	}
	return requisitions, nil
}

func (s *inventoryService) ListRequisitionsByStatus(ctx context.Context, status string) ([]*models.Requisition, error) {
	requestStatus := models.RequisitionStatus(strings.ToUpper(status))
	switch requestStatus {
	case models.RequisitionPending, models.RequisitionApproved, models.RequisitionDenied,
		models.RequisitionDispatched, models.RequisitionAcknowledged:
	default:
		return nil, fmt.Errorf("service: unknown requisition status %q: %w", status, ErrValidation)
	}
	requisitions, err := s.repo.ListRequisitionsByStatus(ctx, requestStatus)
	if err != nil {
		return nil, fmt.Errorf("service: could not list requisitions: %w", err)
	}
	return requisitions, nil
}

// DashboardStats возвращает сводку для панели менеджера инвентаря
func (s *inventoryService) DashboardStats(ctx context.Context) (*models.InventoryDashboardStats, error) {
	pending, err := s.repo.CountRequisitionsByStatus(ctx, models.RequisitionPending)
	if err != nil {
		return nil, fmt.Errorf("service: could not count pending requisitions: %w", err)
	}
	ready, err := s.repo.CountRequisitionsByStatus(ctx, models.RequisitionApproved)
	if err != nil {
		return nil, fmt.Errorf("service: could not count approved requisitions: %w", err)
	}
	lowStock, err := s.repo.CountLowStockItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count low stock items: %w", err)
	}
	return &models.InventoryDashboardStats{
		PendingRequisitions: pending,
		ReadyForPickup:      ready,
		LowStockItems:       lowStock,
	}, nil
}

func (s *inventoryService) ListLogs(ctx context.Context) ([]*models.InventoryLog, error) {
	logs, err := s.repo.ListLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list inventory logs: %w", err)
	}
	return logs, nil
}

func (s *inventoryService) getOrCreateKit(ctx context.Context, userID int64) (*models.FirstAidKit, error) {
	kit, err := s.repo.GetKitByUserID(ctx, userID)
	if err == nil {
		return kit, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("service: could not get first aid kit: %w", err)
	}
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	kit, err = s.repo.CreateKit(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not create first aid kit: %w", err)
	}
	return kit, nil
}

// ownedKitItem возвращает строку аптечки после проверки принадлежности
func (s *inventoryService) ownedKitItem(ctx context.Context, userID, kitItemID int64) (*models.FirstAidKitItem, error) {
	kit, err := s.repo.GetKitByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get first aid kit: %w", err)
	}
	kitItem, err := s.repo.GetKitItemByID(ctx, kitItemID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get kit item: %w", err)
	}
	if kitItem.KitID != kit.ID {
		return nil, fmt.Errorf("service: item does not belong to this user's first aid kit: %w", ErrForbidden)
	}
	return kitItem, nil
}

// notifyManagers уведомляет менеджеров склада о новой заявке.
// Сбои уведомлений заявку не блокируют.
func (s *inventoryService) notifyManagers(ctx context.Context, requisition *models.Requisition, user *models.User) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "inventory",
		"method":         "notifyManagers",
		"requisition_id": requisition.ID,
	})

	managers, err := s.users.ListUsersByRoles(ctx, []models.RoleName{models.RoleInventoryManager, models.RoleSuperAdmin})
	if err != nil {
		log.WithError(err).Error("Failed to list inventory managers")
		return
	}
	if len(managers) == 0 {
		log.Warn("New inventory request created, but no INVENTORY_MANAGER or SUPER_ADMIN users found to notify")
		return
	}

	message := fmt.Sprintf("New inventory request (#%d) submitted by %s %s.", requisition.ID, user.FirstName, user.LastName)
	for _, manager := range managers {
		if manager.ID == user.ID {
			continue
		}
		s.notifier.Notify(ctx, manager.ID, models.NotificationInventory, nil, message, &requisition.ID, &user.ID)
	}
	log.WithField("managers", len(managers)).Info("Sent inventory request notification to managers")
}

// writeLog добавляет запись в журнал движения инвентаря. Журнал
// вспомогательный, его сбои основную операцию не прерывают.
func (s *inventoryService) writeLog(ctx context.Context, inventoryItemID int64, userID *int64, action string, quantity int) {
	entry := &models.InventoryLog{
		InventoryItemID: inventoryItemID,
		UserID:          userID,
		Action:          action,
		Quantity:        quantity,
	}
	if err := s.repo.CreateLog(ctx, entry); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "inventory",
			"method":  "writeLog",
			"action":  action,
			"item_id": inventoryItemID,
		}).WithError(err).Error("Failed to write inventory log entry")
	}
}
