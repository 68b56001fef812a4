package models

import (
	"time"
)

// RequisitionStatus - статус заявки на выдачу инвентаря
type RequisitionStatus string

const (
	RequisitionPending      RequisitionStatus = "PENDING"
	RequisitionApproved     RequisitionStatus = "APPROVED"
	RequisitionDenied       RequisitionStatus = "DENIED"
	RequisitionDispatched   RequisitionStatus = "DISPATCHED"
	RequisitionAcknowledged RequisitionStatus = "ACKNOWLEDGED"
)

type ItemCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type InventoryItem struct {
	ID                int64  `json:"id"`
	CategoryID        int64  `json:"category_id"`
	CategoryName      string `json:"category_name,omitempty"`
	Name              string `json:"name"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Unit              string `json:"unit,omitempty"`
}

type FirstAidKit struct {
	ID     int64              `json:"id"`
	UserID int64              `json:"user_id"`
	Items  []*FirstAidKitItem `json:"items"`
}

type FirstAidKitItem struct {
	ID                 int64  `json:"id"`
	KitID              int64  `json:"kit_id"`
	InventoryItemID    int64  `json:"inventory_item_id"`
	ItemName           string `json:"item_name,omitempty"`
	Quantity           int    `json:"quantity"`
	PersonallyProcured bool   `json:"personally_procured"`
}

type Requisition struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	UserName       string            `json:"user_name,omitempty"`
	Status         RequisitionStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	ApprovedAt     *time.Time        `json:"approved_at,omitempty"`
	DispatchedAt   *time.Time        `json:"dispatched_at,omitempty"`
	AcknowledgedAt *time.Time        `json:"acknowledged_at,omitempty"`

	Items []*RequisitionItem `json:"items"`
}

type RequisitionItem struct {
	ID              int64  `json:"id"`
	RequisitionID   int64  `json:"requisition_id"`
	InventoryItemID int64  `json:"inventory_item_id"`
	ItemName        string `json:"item_name,omitempty"`
	Quantity        int    `json:"quantity"`
}

// InventoryLog - запись аудита движения инвентаря
type InventoryLog struct {
	ID              int64     `json:"id"`
	InventoryItemID int64     `json:"inventory_item_id"`
	ItemName        string    `json:"item_name,omitempty"`
	UserID          *int64    `json:"user_id,omitempty"`
	UserName        string    `json:"user_name,omitempty"`
	Action          string    `json:"action"`
	Quantity        int       `json:"quantity"`
	CreatedAt       time.Time `json:"created_at"`
}

// InventoryDashboardStats - сводка для панели менеджера инвентаря
type InventoryDashboardStats struct {
	PendingRequisitions int64 `json:"pending_requisitions"`
	ReadyForPickup      int64 `json:"ready_for_pickup"`
	LowStockItems       int64 `json:"low_stock_items"`
}

// ItemUsage - кто держит предмет в своих аптечках
type ItemUsage struct {
	InUse     bool     `json:"in_use"`
	UserNames []string `json:"user_names,omitempty"`
}
