package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary List pending signup applications
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PendingUser
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /admin/pending-users [get]
func (h *Handler) listPendingUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listPendingUsers")

	pending, err := h.adminService.ListPendingUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, pending)
}

// @Summary Approve a pending signup
// @Description Promote a pending application to a full volunteer account
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pending user ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string "Pending user not found"
// @Router /admin/pending-users/{id}/approve [post]
func (h *Handler) approvePendingUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "approvePendingUser").WithField("pending_user_id", id)

	user, err := h.adminService.ApproveUser(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Deny a pending signup
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pending user ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Pending user not found"
// @Router /admin/pending-users/{id} [delete]
func (h *Handler) denyPendingUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "denyPendingUser").WithField("pending_user_id", id)

	if err := h.adminService.DenyUser(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List users for administration
// @Description List all users except the requesting administrator
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Router /admin/users [get]
func (h *Handler) listUsersForAdmin(c *gin.Context) {
	log := h.logger.WithField("method", "listUsersForAdmin")

	users, err := h.adminService.ListUsersForAdmin(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Replace a user's roles
// @Description Replace the role set of a user, subject to the acting admin's privileges
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param roles body UpdateRolesRequest true "New role set"
// @Success 200 "OK"
// @Failure 403 {object} map[string]string "Not allowed to modify this user"
// @Router /admin/users/{id}/roles [put]
func (h *Handler) updateUserRoles(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateUserRoles").WithField("user_id", id)

	var input UpdateRolesRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if err := h.adminService.UpdateUserRoles(c.Request.Context(), id, RolesFromStrings(input.Roles), currentRoles(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete a user
// @Description Permanently delete a user and all associated data
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param notify query bool false "Notify remaining users" default(false)
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "User is in an active case"
// @Router /admin/users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteUser").WithField("user_id", id)
	notify, _ := strconv.ParseBool(c.DefaultQuery("notify", "false"))

	if err := h.adminService.DeleteUser(c.Request.Context(), id, currentUserID(c), notify); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete users in batch
// @Description Delete several users at once, skipping those that cannot be deleted
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BatchDeleteRequest true "User IDs to delete"
// @Success 200 {object} models.BatchDeleteResult
// @Router /admin/users/batch-delete [post]
func (h *Handler) batchDeleteUsers(c *gin.Context) {
	log := h.logger.WithField("method", "batchDeleteUsers")

	var input BatchDeleteRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	result, err := h.adminService.DeleteUsersBatch(c.Request.Context(), input.UserIDs, currentUserID(c), input.NotifyUsers)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Reset a user's password
// @Description Reset the user's password to the default one
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 "OK"
// @Failure 403 {object} map[string]string "Cannot reset another super admin's password"
// @Router /admin/users/{id}/reset-password [post]
func (h *Handler) resetUserPassword(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "resetUserPassword").WithField("user_id", id)

	if err := h.adminService.ResetUserPassword(c.Request.Context(), id, currentUserID(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}
