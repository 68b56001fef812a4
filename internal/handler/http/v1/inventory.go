package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawsome-ngo/rescue-backend/internal/models"
)

// @Summary List inventory items
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.InventoryItem
// @Router /inventory/items [get]
func (h *Handler) listInventoryItems(c *gin.Context) {
	log := h.logger.WithField("method", "listInventoryItems")

	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Create an inventory item
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body ItemRequest true "Inventory item"
// @Success 201 {object} models.InventoryItem
// @Failure 404 {object} map[string]string "Category not found"
// @Router /inventory/items [post]
func (h *Handler) createInventoryItem(c *gin.Context) {
	log := h.logger.WithField("method", "createInventoryItem")

	var input ItemRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	item, err := h.inventoryService.CreateItem(c.Request.Context(), &models.InventoryItem{
		CategoryID:        input.CategoryID,
		Name:              input.Name,
		Quantity:          input.Quantity,
		LowStockThreshold: input.LowStockThreshold,
		Unit:              input.Unit,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary Update an inventory item
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param item body ItemRequest true "Inventory item"
// @Success 200 {object} models.InventoryItem
// @Failure 404 {object} map[string]string "Item not found"
// @Router /inventory/items/{id} [put]
func (h *Handler) updateInventoryItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateInventoryItem").WithField("item_id", id)

	var input ItemRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	item, err := h.inventoryService.UpdateItem(c.Request.Context(), &models.InventoryItem{
		ID:                id,
		CategoryID:        input.CategoryID,
		Name:              input.Name,
		Quantity:          input.Quantity,
		LowStockThreshold: input.LowStockThreshold,
		Unit:              input.Unit,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Delete an inventory item
// @Description Delete an item together with its logs, requisition lines and kit lines
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Item not found"
// @Router /inventory/items/{id} [delete]
func (h *Handler) deleteInventoryItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteInventoryItem").WithField("item_id", id)

	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get item usage across kits
// @Description Report which volunteers hold the item in their first-aid kits
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} models.ItemUsage
// @Failure 404 {object} map[string]string "Item not found"
// @Router /inventory/items/{id}/usage [get]
func (h *Handler) getItemUsage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getItemUsage").WithField("item_id", id)

	usage, err := h.inventoryService.GetItemUsage(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, usage)
}

// @Summary List item categories
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ItemCategory
// @Router /inventory/categories [get]
func (h *Handler) listItemCategories(c *gin.Context) {
	log := h.logger.WithField("method", "listItemCategories")

	categories, err := h.inventoryService.ListCategories(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// @Summary Create an item category
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body CategoryRequest true "Category"
// @Success 201 {object} models.ItemCategory
// @Router /inventory/categories [post]
func (h *Handler) createItemCategory(c *gin.Context) {
	log := h.logger.WithField("method", "createItemCategory")

	var input CategoryRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	category, err := h.inventoryService.CreateCategory(c.Request.Context(), &models.ItemCategory{Name: input.Name})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// @Summary Rename an item category
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param category body CategoryRequest true "Category"
// @Success 200 {object} models.ItemCategory
// @Failure 404 {object} map[string]string "Category not found"
// @Router /inventory/categories/{id} [put]
func (h *Handler) updateItemCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateItemCategory").WithField("category_id", id)

	var input CategoryRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	category, err := h.inventoryService.UpdateCategory(c.Request.Context(), &models.ItemCategory{ID: id, Name: input.Name})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// @Summary Delete an item category
// @Description Delete a category. Fails while any inventory item still uses it.
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Category is in use"
// @Router /inventory/categories/{id} [delete]
func (h *Handler) deleteItemCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteItemCategory").WithField("category_id", id)

	if err := h.inventoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get own first-aid kit
// @Description Get the volunteer's first-aid kit, creating an empty one on first access
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FirstAidKit
// @Router /inventory/kit [get]
func (h *Handler) getFirstAidKit(c *gin.Context) {
	log := h.logger.WithField("method", "getFirstAidKit")

	kit, err := h.inventoryService.GetFirstAidKit(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, kit)
}

// @Summary Add a personally procured item to the kit
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body KitItemRequest true "Kit item"
// @Success 201 {object} models.FirstAidKitItem
// @Failure 404 {object} map[string]string "Inventory item not found"
// @Router /inventory/kit/items [post]
func (h *Handler) addKitItem(c *gin.Context) {
	log := h.logger.WithField("method", "addKitItem")

	var input KitItemRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	item, err := h.inventoryService.AddPersonallyProcuredItem(c.Request.Context(), currentUserID(c), input.InventoryItemID, input.Quantity)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary Change the quantity of a kit item
// @Description Set the quantity of an own kit line. Stock is never returned; usage is logged.
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kit item ID"
// @Param quantity body UpdateKitItemRequest true "New quantity"
// @Success 200 "OK"
// @Failure 403 {object} map[string]string "Kit item belongs to another volunteer"
// @Router /inventory/kit/items/{id} [put]
func (h *Handler) updateKitItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateKitItem").WithField("kit_item_id", id)

	var input UpdateKitItemRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.inventoryService.UpdateKitItemQuantity(c.Request.Context(), currentUserID(c), id, input.Quantity); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Remove an item from the kit
// @Description Remove an own kit line. Stock is never returned; usage is logged.
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kit item ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Kit item belongs to another volunteer"
// @Router /inventory/kit/items/{id} [delete]
func (h *Handler) removeKitItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "removeKitItem").WithField("kit_item_id", id)

	if err := h.inventoryService.RemoveKitItem(c.Request.Context(), currentUserID(c), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a requisition
// @Description Submit a requisition for warehouse items; inventory managers are notified
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requisition body RequisitionRequest true "Requested items"
// @Success 201 {object} models.Requisition
// @Failure 404 {object} map[string]string "Inventory item not found"
// @Router /inventory/requisitions [post]
func (h *Handler) createRequisition(c *gin.Context) {
	log := h.logger.WithField("method", "createRequisition")

	var input RequisitionRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	requisition, err := h.inventoryService.CreateRequisition(c.Request.Context(), currentUserID(c), RequisitionItemsFromRequest(input.Items))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, requisition)
}

// @Summary List own open requisitions
// @Description List the user's requisitions that are still PENDING, APPROVED or DISPATCHED
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Requisition
// @Router /inventory/requisitions/open [get]
func (h *Handler) listOpenRequisitions(c *gin.Context) {
	log := h.logger.WithField("method", "listOpenRequisitions")

	requisitions, err := h.inventoryService.ListOpenRequisitions(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, requisitions)
}

// @Summary List requisitions by status
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param status query string true "Requisition status"
// @Success 200 {array} models.Requisition
// @Failure 400 {object} map[string]string "Unknown status"
// @Router /inventory/requisitions [get]
func (h *Handler) listRequisitionsByStatus(c *gin.Context) {
	log := h.logger.WithField("method", "listRequisitionsByStatus")

	requisitions, err := h.inventoryService.ListRequisitionsByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, requisitions)
}

// @Summary Approve a requisition
// @Description Approve a PENDING requisition after checking stock levels
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requisition ID"
// @Success 200 "OK"
// @Failure 409 {object} map[string]string "Not PENDING or insufficient stock"
// @Router /inventory/requisitions/{id}/approve [post]
func (h *Handler) approveRequisition(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "approveRequisition").WithField("requisition_id", id)

	if err := h.inventoryService.ApproveRequisition(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Deny a requisition
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requisition ID"
// @Success 200 "OK"
// @Failure 404 {object} map[string]string "Requisition not found"
// @Router /inventory/requisitions/{id}/deny [post]
func (h *Handler) denyRequisition(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "denyRequisition").WithField("requisition_id", id)

	if err := h.inventoryService.DenyRequisition(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Dispatch a requisition
// @Description Mark an APPROVED requisition as dispatched for pickup
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requisition ID"
// @Success 200 "OK"
// @Failure 409 {object} map[string]string "Requisition is not APPROVED"
// @Router /inventory/requisitions/{id}/dispatch [post]
func (h *Handler) dispatchRequisition(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "dispatchRequisition").WithField("requisition_id", id)

	if err := h.inventoryService.DispatchRequisition(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Acknowledge a dispatched requisition
// @Description Owner confirms pickup: stock is decremented and items land in the first-aid kit
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requisition ID"
// @Success 200 "OK"
// @Failure 403 {object} map[string]string "Requisition belongs to another volunteer"
// @Failure 409 {object} map[string]string "Not DISPATCHED or insufficient stock"
// @Router /inventory/requisitions/{id}/acknowledge [post]
func (h *Handler) acknowledgeRequisition(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "acknowledgeRequisition").WithField("requisition_id", id)

	if err := h.inventoryService.AcknowledgeRequisition(c.Request.Context(), id, currentUserID(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Inventory dashboard stats
// @Description Pending requisitions, requisitions ready for pickup and low-stock item counts
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.InventoryDashboardStats
// @Router /inventory/dashboard [get]
func (h *Handler) inventoryDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "inventoryDashboard")

	stats, err := h.inventoryService.DashboardStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary List inventory audit logs
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.InventoryLog
// @Router /inventory/logs [get]
func (h *Handler) listInventoryLogs(c *gin.Context) {
	log := h.logger.WithField("method", "listInventoryLogs")

	logs, err := h.inventoryService.ListLogs(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
