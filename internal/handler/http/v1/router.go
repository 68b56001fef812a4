package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты: регистрация, вход, прием заявок об инцидентах
	// и раздача загруженных медиафайлов
	api.POST("/auth/signup", h.signUp)
	api.POST("/auth/login", h.login)
	api.POST("/incidents", h.reportIncident)
	api.GET("/uploads/:filename", h.serveUpload)
	api.GET("/system/health", h.healthCheck)

	authed := api.Group("")
	authed.Use(JWTAuthMiddleware(h.tokens, h.logger))
	{
		authed.GET("/ws", h.serveWS)

		// Профиль и настройки волонтера
		users := authed.Group("/users")
		{
			users.GET("/me", h.getProfile)
			users.PUT("/me/availability", h.updateAvailability)
			users.PUT("/me/location", h.updateUserLocation)
			users.PUT("/me/vehicle", h.updateVehicle)
			users.PUT("/me/medicine-box", h.updateMedicineBox)
			users.PUT("/me/shelter", h.updateShelter)
			users.PUT("/me/experience", h.updateExperience)
			users.PUT("/me/password", h.changePassword)
		}
		authed.GET("/leaderboard", h.leaderboard)

		// Просмотр инцидентов доступен всем волонтерам
		incidents := authed.Group("/incidents")
		{
			incidents.GET("", h.listIncidents)
			incidents.GET("/summaries", h.listIncidentSummaries)
			incidents.GET("/live", h.listLiveIncidentSummaries)
			incidents.GET("/:id", h.getIncident)
			incidents.GET("/:id/history", h.getIncidentHistory)
			incidents.POST("/:id/interest", h.expressInterest)
			incidents.DELETE("/:id/interest", h.removeInterest)
		}

		// Ведение инцидентов: капитаны и администраторы
		managed := authed.Group("/incidents", RequireAction(ActionManageIncidents))
		{
			managed.PUT("/:id", h.updateIncident)
			managed.PATCH("/:id/location", h.updateIncidentLocation)
			managed.PUT("/:id/status", h.updateIncidentStatus)
			managed.PUT("/:id/initiate", h.initiateIncident)
			managed.POST("/:id/resolve", h.resolveIncident)
			managed.POST("/:id/close", h.closeIncident)
			managed.POST("/:id/reactivate", h.reactivateIncident)
			managed.DELETE("/:id/media/:mediaId", h.deleteIncidentMedia)
			managed.DELETE("/:id/media", h.deleteAllIncidentMedia)
		}
		authed.DELETE("/incidents/:id", RequireAction(ActionDeleteIncidents), h.deleteIncident)

		// Формирование команд
		assignment := authed.Group("/incidents", RequireAction(ActionAssignTeams))
		{
			assignment.GET("/:id/volunteers", h.listAvailableVolunteers)
			assignment.POST("/:id/assign", h.assignTeam)
		}
		authed.GET("/incidents/:id/team", h.getTeamDetails)
		authed.GET("/incidents/:id/team/kit-items", h.getTeamKitItems)

		// Жизненный цикл спасательного дела
		authed.GET("/cases/my", h.getMyCases)
		authed.POST("/incidents/:id/initiate", h.confirmInitiation)
		authed.POST("/incidents/:id/complete", h.completeCase)

		// Чаты
		chats := authed.Group("/chats")
		{
			chats.GET("", h.listChats)
			chats.GET("/:chatId/messages", h.listChatMessages)
			chats.POST("/:chatId/messages", h.sendChatMessage)
			chats.GET("/:chatId/participants", h.listChatParticipants)
			chats.POST("/messages/:messageId/reactions", h.addReaction)
			chats.POST("/messages/:messageId/read", h.markMessageRead)
		}
		authed.GET("/global-chat/messages", h.listGlobalChatMessages)
		authed.POST("/global-chat/messages", h.sendGlobalChatMessage)
		authed.DELETE("/global-chat/messages", RequireAction(ActionClearGlobalChat), h.clearGlobalChatMessages)

		// Уведомления и Web Push
		notifications := authed.Group("/notifications")
		{
			notifications.GET("", h.listNotifications)
			notifications.POST("/:id/read", h.markNotificationRead)
			notifications.POST("/read-all", h.markAllNotificationsRead)
			notifications.DELETE("/:id", h.deleteNotification)
			notifications.DELETE("", h.deleteAllNotifications)
			notifications.POST("/purge", RequireAction(ActionPurgeOldNotices), h.purgeOldNotifications)
			notifications.POST("/subscriptions", h.subscribePush)
			notifications.DELETE("/subscriptions", h.unsubscribePush)
		}

		// Инвентарь: личная аптечка и заявки доступны всем волонтерам
		inventory := authed.Group("/inventory")
		{
			inventory.GET("/items", h.listInventoryItems)
			inventory.GET("/categories", h.listItemCategories)
			inventory.GET("/kit", h.getFirstAidKit)
			inventory.POST("/kit/items", h.addKitItem)
			inventory.PUT("/kit/items/:id", h.updateKitItem)
			inventory.DELETE("/kit/items/:id", h.removeKitItem)
			inventory.POST("/requisitions", h.createRequisition)
			inventory.GET("/requisitions/open", h.listOpenRequisitions)
			inventory.POST("/requisitions/:id/acknowledge", h.acknowledgeRequisition)
		}

		// Операции склада: обработка заявок и панель кладовщика
		warehouse := authed.Group("/inventory", RequireAction(ActionViewInventoryOps))
		{
			warehouse.GET("/requisitions", h.listRequisitionsByStatus)
			warehouse.POST("/requisitions/:id/approve", h.approveRequisition)
			warehouse.POST("/requisitions/:id/deny", h.denyRequisition)
			warehouse.POST("/requisitions/:id/dispatch", h.dispatchRequisition)
			warehouse.GET("/dashboard", h.inventoryDashboard)
			warehouse.GET("/logs", h.listInventoryLogs)
		}

		// Управление номенклатурой склада
		stock := authed.Group("/inventory", RequireAction(ActionManageInventory))
		{
			stock.POST("/items", h.createInventoryItem)
			stock.PUT("/items/:id", h.updateInventoryItem)
			stock.DELETE("/items/:id", h.deleteInventoryItem)
			stock.GET("/items/:id/usage", h.getItemUsage)
			stock.POST("/categories", h.createItemCategory)
			stock.PUT("/categories/:id", h.updateItemCategory)
			stock.DELETE("/categories/:id", h.deleteItemCategory)
		}

		// Администрирование пользователей
		admin := authed.Group("/admin", RequireAction(ActionAdminUsers))
		{
			admin.GET("/pending-users", h.listPendingUsers)
			admin.POST("/pending-users/:id/approve", h.approvePendingUser)
			admin.DELETE("/pending-users/:id", h.denyPendingUser)
			admin.GET("/users", h.listUsersForAdmin)
			admin.PUT("/users/:id/roles", h.updateUserRoles)
			admin.DELETE("/users/:id", h.deleteUser)
			admin.POST("/users/batch-delete", h.batchDeleteUsers)
			admin.POST("/users/:id/reset-password", RequireAction(ActionSuperAdmin), h.resetUserPassword)
		}
	}
}
