// internal/handlers/notification.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vintagecottage/storefront/internal/services"
	"github.com/vintagecottage/storefront/internal/utils"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GET /notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	var notifications []services.Notification
	switch c.Query("audience") {
	case "admin":
		notifications = h.notificationService.ForAdmin()
	case "all":
		notifications = h.notificationService.All()
	default:
		notifications = h.notificationService.ForUser()
	}

	utils.SuccessResponse(c, gin.H{
		"notifications": notifications,
		"unread_count":  h.notificationService.UnreadCount(),
	})
}

// GET /notifications/unread-count
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"unread_count": h.notificationService.UnreadCount(),
	})
}

// PUT /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if !h.notificationService.MarkRead(c.Param("id")) {
		utils.NotFoundResponse(c, "notification.not_found")
		return
	}
	utils.SuccessResponse(c, gin.H{"read": true})
}

// DELETE /notifications/:id
func (h *NotificationHandler) RemoveNotification(c *gin.Context) {
	if !h.notificationService.Remove(c.Param("id")) {
		utils.NotFoundResponse(c, "notification.not_found")
		return
	}
	utils.SuccessResponse(c, gin.H{"removed": true})
}

// DELETE /notifications
func (h *NotificationHandler) ClearNotifications(c *gin.Context) {
	h.notificationService.Clear()
	utils.SuccessResponse(c, gin.H{"cleared": true})
}

// GET /notifications/snapshot
func (h *NotificationHandler) GetSnapshot(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"notifications": h.notificationService.Snapshot(),
	})
}
