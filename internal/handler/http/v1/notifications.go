package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary List own notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread notifications" default(false)
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "listNotifications")
	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unread", "false"))

	notifications, err := h.notifService.ListNotifications(c.Request.Context(), currentUserID(c), unreadOnly)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 "OK"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{id}/read [post]
func (h *Handler) markNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "markNotificationRead").WithField("notification_id", id)

	if err := h.notifService.MarkAsRead(c.Request.Context(), id, currentUserID(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Mark all notifications as read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CountResponse
// @Router /notifications/read-all [post]
func (h *Handler) markAllNotificationsRead(c *gin.Context) {
	log := h.logger.WithField("method", "markAllNotificationsRead")

	updated, err := h.notifService.MarkAllAsRead(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: updated})
}

// @Summary Delete a notification
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{id} [delete]
func (h *Handler) deleteNotification(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteNotification").WithField("notification_id", id)

	if err := h.notifService.DeleteNotification(c.Request.Context(), id, currentUserID(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete all own notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CountResponse
// @Router /notifications [delete]
func (h *Handler) deleteAllNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "deleteAllNotifications")

	deleted, err := h.notifService.DeleteAllForUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: deleted})
}

// @Summary Purge old notifications
// @Description Delete notifications older than the given number of days for all users
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param days query int false "Age threshold in days" default(30)
// @Success 200 {object} CountResponse
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /notifications/purge [post]
func (h *Handler) purgeOldNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "purgeOldNotifications")
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days parameter"})
		return
	}

	deleted, err := h.notifService.PurgeOlderThan(c.Request.Context(), days)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: deleted})
}

// @Summary Subscribe to Web Push
// @Description Register a browser push subscription for the authenticated user
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subscription body SubscribeRequest true "Push subscription keys"
// @Success 201 "Created"
// @Router /notifications/subscriptions [post]
func (h *Handler) subscribePush(c *gin.Context) {
	log := h.logger.WithField("method", "subscribePush")

	var input SubscribeRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.notifService.Subscribe(c.Request.Context(), currentUserID(c), input.Endpoint, input.P256dh, input.Auth); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Unsubscribe from Web Push
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subscription body UnsubscribeRequest true "Subscription endpoint"
// @Success 204 "No Content"
// @Router /notifications/subscriptions [delete]
func (h *Handler) unsubscribePush(c *gin.Context) {
	log := h.logger.WithField("method", "unsubscribePush")

	var input UnsubscribeRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.notifService.Unsubscribe(c.Request.Context(), input.Endpoint); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
