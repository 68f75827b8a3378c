package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venturelink_backend/internal/middleware"
	"venturelink_backend/internal/services"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService *services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", h.ListNotifications)
		notifications.DELETE("/:notificationId", h.AcknowledgeNotification)
		notifications.DELETE("", h.AcknowledgeAll)
	}
}

// ListNotifications returns the caller's unacknowledged alerts, newest-first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	list, err := h.notificationService.ListForRecipient(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AcknowledgeNotification removes one alert from the caller's inbox.
func (h *NotificationHandler) AcknowledgeNotification(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.notificationService.Acknowledge(userID, c.Param("notificationId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification acknowledged"})
}

// AcknowledgeAll empties the caller's inbox.
func (h *NotificationHandler) AcknowledgeAll(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.notificationService.AcknowledgeAll(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications acknowledged"})
}
