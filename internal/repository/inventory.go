package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
	"github.com/pawsome-ngo/rescue-backend/internal/service"
)

type InventoryRepository struct {
	db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) service.InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) ListCategories(ctx context.Context) ([]*models.ItemCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM item_categories ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list item categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*models.ItemCategory, 0)
	for rows.Next() {
		category := &models.ItemCategory{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return categories, nil
}

func (r *InventoryRepository) GetCategoryByID(ctx context.Context, id int64) (*models.ItemCategory, error) {
	category := &models.ItemCategory{}
	err := r.db.QueryRow(ctx, `SELECT id, name FROM item_categories WHERE id = $1;`, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item category with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item category: %w", err)
	}
	return category, nil
}

func (r *InventoryRepository) CreateCategory(ctx context.Context, category *models.ItemCategory) error {
	err := r.db.QueryRow(ctx, `INSERT INTO item_categories (name) VALUES ($1) RETURNING id;`, category.Name).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("failed to create item category: %w", err)
	}
	return nil
}

func (r *InventoryRepository) UpdateCategory(ctx context.Context, category *models.ItemCategory) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE item_categories SET name = $1 WHERE id = $2;`, category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("failed to update item category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("item category with id %d: %w", category.ID, service.ErrNotFound)
	}
	return nil
}

func (r *InventoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM item_categories WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("item category with id %d: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *InventoryRepository) CategoryInUse(ctx context.Context, id int64) (bool, error) {
	var inUse bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM inventory_items WHERE category_id = $1);`, id).Scan(&inUse)
	if err != nil {
		return false, fmt.Errorf("failed to check category usage: %w", err)
	}
	return inUse, nil
}

const inventoryItemColumns = `
	i.id, i.category_id, c.name, i.name, i.quantity, i.low_stock_threshold, i.unit
`

func scanInventoryItem(row pgx.Row) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	err := row.Scan(
		&item.ID,
		&item.CategoryID,
		&item.CategoryName,
		&item.Name,
		&item.Quantity,
		&item.LowStockThreshold,
		&item.Unit,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *InventoryRepository) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items i
		JOIN item_categories c ON c.id = i.category_id
		ORDER BY i.name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	items := make([]*models.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) GetItemByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items i
		JOIN item_categories c ON c.id = i.category_id
		WHERE i.id = $1;
	`
	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("inventory item with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

func (r *InventoryRepository) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (category_id, name, quantity, low_stock_threshold, unit)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		item.CategoryID,
		item.Name,
		item.Quantity,
		item.LowStockThreshold,
		item.Unit,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, item *models.InventoryItem) error {
	query := `
		UPDATE inventory_items SET
			category_id = $1,
			name = $2,
			quantity = $3,
			low_stock_threshold = $4,
			unit = $5
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		item.CategoryID,
		item.Name,
		item.Quantity,
		item.LowStockThreshold,
		item.Unit,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("inventory item with id %d: %w", item.ID, service.ErrNotFound)
	}
	return nil
}

func (r *InventoryRepository) SetItemQuantity(ctx context.Context, id int64, quantity int) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE inventory_items SET quantity = $1 WHERE id = $2;`, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to set inventory item quantity: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("inventory item with id %d: %w", id, service.ErrNotFound)
	}
	return nil
}

// DeleteItemData удаляет позицию вместе с журналом, строками заявок и
// вхождениями в аптечки в одной транзакции
func (r *InventoryRepository) DeleteItemData(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	statements := []string{
		`DELETE FROM inventory_logs WHERE inventory_item_id = $1;`,
		`DELETE FROM requisition_items WHERE inventory_item_id = $1;`,
		`DELETE FROM first_aid_kit_items WHERE inventory_item_id = $1;`,
	}
	for _, statement := range statements {
		if _, err := tx.Exec(ctx, statement, id); err != nil {
			return fmt.Errorf("failed to delete inventory item data: %w", err)
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("inventory item with id %d: %w", id, service.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *InventoryRepository) CountLowStockItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_items WHERE quantity <= low_stock_threshold;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count low stock items: %w", err)
	}
	return count, nil
}

// GetKitByUserID возвращает аптечку пользователя с содержимым
func (r *InventoryRepository) GetKitByUserID(ctx context.Context, userID int64) (*models.FirstAidKit, error) {
	kit := &models.FirstAidKit{}
	err := r.db.QueryRow(ctx, `SELECT id, user_id FROM first_aid_kits WHERE user_id = $1;`, userID).Scan(&kit.ID, &kit.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("first aid kit for user %d: %w", userID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get first aid kit: %w", err)
	}

	kit.Items, err = r.listKitItems(ctx, kit.ID)
	if err != nil {
		return nil, err
	}
	return kit, nil
}

func (r *InventoryRepository) CreateKit(ctx context.Context, userID int64) (*models.FirstAidKit, error) {
	kit := &models.FirstAidKit{UserID: userID, Items: make([]*models.FirstAidKitItem, 0)}
	err := r.db.QueryRow(ctx, `INSERT INTO first_aid_kits (user_id) VALUES ($1) RETURNING id;`, userID).Scan(&kit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create first aid kit: %w", err)
	}
	return kit, nil
}

func (r *InventoryRepository) listKitItems(ctx context.Context, kitID int64) ([]*models.FirstAidKitItem, error) {
	query := `
		SELECT ki.id, ki.kit_id, ki.inventory_item_id, i.name, ki.quantity, ki.personally_procured
		FROM first_aid_kit_items ki
		JOIN inventory_items i ON i.id = ki.inventory_item_id
		WHERE ki.kit_id = $1
		ORDER BY i.name;
	`
	rows, err := r.db.Query(ctx, query, kitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kit items: %w", err)
	}
	defer rows.Close()

	items := make([]*models.FirstAidKitItem, 0)
	for rows.Next() {
		item := &models.FirstAidKitItem{}
		err := rows.Scan(
			&item.ID,
			&item.KitID,
			&item.InventoryItemID,
			&item.ItemName,
			&item.Quantity,
			&item.PersonallyProcured,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kit item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) GetKitItemByID(ctx context.Context, id int64) (*models.FirstAidKitItem, error) {
	item := &models.FirstAidKitItem{}
	query := `
		SELECT ki.id, ki.kit_id, ki.inventory_item_id, i.name, ki.quantity, ki.personally_procured
		FROM first_aid_kit_items ki
		JOIN inventory_items i ON i.id = ki.inventory_item_id
		WHERE ki.id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.KitID,
		&item.InventoryItemID,
		&item.ItemName,
		&item.Quantity,
		&item.PersonallyProcured,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("kit item with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get kit item: %w", err)
	}
	return item, nil
}

func (r *InventoryRepository) AddKitItem(ctx context.Context, item *models.FirstAidKitItem) error {
	query := `
		INSERT INTO first_aid_kit_items (kit_id, inventory_item_id, quantity, personally_procured)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		item.KitID,
		item.InventoryItemID,
		item.Quantity,
		item.PersonallyProcured,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to add kit item: %w", err)
	}
	return nil
}

func (r *InventoryRepository) UpdateKitItemQuantity(ctx context.Context, id int64, quantity int) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE first_aid_kit_items SET quantity = $1 WHERE id = $2;`, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to update kit item quantity: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("kit item with id %d: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *InventoryRepository) DeleteKitItem(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM first_aid_kit_items WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete kit item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("kit item with id %d: %w", id, service.ErrNotFound)
	}
	return nil
}

// ListKitHolderNames возвращает имена пользователей, в аптечках которых
// лежит указанная позиция
func (r *InventoryRepository) ListKitHolderNames(ctx context.Context, inventoryItemID int64) ([]string, error) {
	query := `
		SELECT DISTINCT u.first_name || ' ' || u.last_name
		FROM first_aid_kit_items ki
		JOIN first_aid_kits k ON k.id = ki.kit_id
		JOIN users u ON u.id = k.user_id
		WHERE ki.inventory_item_id = $1
		ORDER BY 1;
	`
	rows, err := r.db.Query(ctx, query, inventoryItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kit holders: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan kit holder row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return names, nil
}

// ListKitItemNamesByUsers возвращает уникальные названия предметов в
// аптечках указанных пользователей
func (r *InventoryRepository) ListKitItemNamesByUsers(ctx context.Context, userIDs []int64) ([]string, error) {
	query := `
		SELECT DISTINCT i.name
		FROM first_aid_kit_items ki
		JOIN first_aid_kits k ON k.id = ki.kit_id
		JOIN inventory_items i ON i.id = ki.inventory_item_id
		WHERE k.user_id = ANY($1) AND ki.quantity > 0
		ORDER BY i.name;
	`
	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list kit item names: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan kit item name row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return names, nil
}

// CreateRequisition создает заявку вместе со строками в одной транзакции
func (r *InventoryRepository) CreateRequisition(ctx context.Context, requisition *models.Requisition) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO requisitions (user_id, status) VALUES ($1, $2) RETURNING id, created_at;`,
		requisition.UserID, requisition.Status,
	).Scan(&requisition.ID, &requisition.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create requisition: %w", err)
	}

	for _, item := range requisition.Items {
		item.RequisitionID = requisition.ID
		err := tx.QueryRow(ctx,
			`INSERT INTO requisition_items (requisition_id, inventory_item_id, quantity) VALUES ($1, $2, $3) RETURNING id;`,
			item.RequisitionID, item.InventoryItemID, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to create requisition item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const requisitionColumns = `
	r.id, r.user_id, u.first_name || ' ' || u.last_name, r.status,
	r.created_at, r.approved_at, r.dispatched_at, r.acknowledged_at
`

func scanRequisition(row pgx.Row) (*models.Requisition, error) {
	requisition := &models.Requisition{}
	err := row.Scan(
		&requisition.ID,
		&requisition.UserID,
		&requisition.UserName,
		&requisition.Status,
		&requisition.CreatedAt,
		&requisition.ApprovedAt,
		&requisition.DispatchedAt,
		&requisition.AcknowledgedAt,
	)
	if err != nil {
		return nil, err
	}
	return requisition, nil
}

func (r *InventoryRepository) GetRequisitionByID(ctx context.Context, id int64) (*models.Requisition, error) {
	query := `
		SELECT ` + requisitionColumns + `
		FROM requisitions r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1;
	`
	requisition, err := scanRequisition(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("requisition with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get requisition: %w", err)
	}

	requisition.Items, err = r.listRequisitionItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return requisition, nil
}

func (r *InventoryRepository) listRequisitionItems(ctx context.Context, requisitionID int64) ([]*models.RequisitionItem, error) {
	query := `
		SELECT ri.id, ri.requisition_id, ri.inventory_item_id, i.name, ri.quantity
		FROM requisition_items ri
		JOIN inventory_items i ON i.id = ri.inventory_item_id
		WHERE ri.requisition_id = $1
		ORDER BY ri.id;
	`
	rows, err := r.db.Query(ctx, query, requisitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requisition items: %w", err)
	}
	defer rows.Close()

	items := make([]*models.RequisitionItem, 0)
	for rows.Next() {
		item := &models.RequisitionItem{}
		if err := rows.Scan(&item.ID, &item.RequisitionID, &item.InventoryItemID, &item.ItemName, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan requisition item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) listRequisitions(ctx context.Context, query string, args ...any) ([]*models.Requisition, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list requisitions: %w", err)
	}
	defer rows.Close()

	requisitions := make([]*models.Requisition, 0)
	for rows.Next() {
		requisition, err := scanRequisition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan requisition row: %w", err)
		}
		requisitions = append(requisitions, requisition)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	rows.Close()

	for _, requisition := range requisitions {
		requisition.Items, err = r.listRequisitionItems(ctx, requisition.ID)
		if err != nil {
			return nil, err
		}
	}
	return requisitions, nil
}

func (r *InventoryRepository) ListRequisitionsByUserAndStatuses(ctx context.Context, userID int64, statuses []models.RequisitionStatus) ([]*models.Requisition, error) {
	statusNames := make([]string, len(statuses))
	for i, status := range statuses {
		statusNames[i] = string(status)
	}
	query := `
		SELECT ` + requisitionColumns + `
		FROM requisitions r
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1 AND r.status = ANY($2)
		ORDER BY r.created_at DESC;
	`
	return r.listRequisitions(ctx, query, userID, statusNames)
}

func (r *InventoryRepository) ListRequisitionsByStatus(ctx context.Context, status models.RequisitionStatus) ([]*models.Requisition, error) {
	query := `
		SELECT ` + requisitionColumns + `
		FROM requisitions r
		JOIN users u ON u.id = r.user_id
		WHERE r.status = $1
		ORDER BY r.created_at;
	`
	return r.listRequisitions(ctx, query, status)
}

// UpdateRequisitionStatus меняет статус заявки, проставляя соответствующую
// отметку времени
func (r *InventoryRepository) UpdateRequisitionStatus(ctx context.Context, id int64, status models.RequisitionStatus) error {
	query := `
		UPDATE requisitions SET
			status = $1,
			approved_at = CASE WHEN $1 = 'APPROVED' THEN NOW() ELSE approved_at END,
			dispatched_at = CASE WHEN $1 = 'DISPATCHED' THEN NOW() ELSE dispatched_at END,
			acknowledged_at = CASE WHEN $1 = 'ACKNOWLEDGED' THEN NOW() ELSE acknowledged_at END
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update requisition status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("requisition with id %d: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *InventoryRepository) CountRequisitionsByStatus(ctx context.Context, status models.RequisitionStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM requisitions WHERE status = $1;`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count requisitions: %w", err)
	}
	return count, nil
}

func (r *InventoryRepository) CreateLog(ctx context.Context, log *models.InventoryLog) error {
	query := `
		INSERT INTO inventory_logs (inventory_item_id, user_id, action, quantity)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		log.InventoryItemID,
		log.UserID,
		log.Action,
		log.Quantity,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create inventory log: %w", err)
	}
	return nil
}

// ListLogs возвращает журнал движения инвентаря, свежие записи сверху
func (r *InventoryRepository) ListLogs(ctx context.Context) ([]*models.InventoryLog, error) {
	query := `
		SELECT l.id, l.inventory_item_id, i.name, l.user_id,
			COALESCE(u.first_name || ' ' || u.last_name, ''), l.action, l.quantity, l.created_at
		FROM inventory_logs l
		JOIN inventory_items i ON i.id = l.inventory_item_id
		LEFT JOIN users u ON u.id = l.user_id
		ORDER BY l.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.InventoryLog, 0)
	for rows.Next() {
		log := &models.InventoryLog{}
		err := rows.Scan(
			&log.ID,
			&log.InventoryItemID,
			&log.ItemName,
			&log.UserID,
			&log.UserName,
			&log.Action,
			&log.Quantity,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory log row: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return logs, nil
}
