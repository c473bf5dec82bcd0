package controllers

import (
	"net/http"

	"github.com/gamer-hub/api-go/storage"
	"github.com/gamer-hub/api-go/utils"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Store *storage.Storage
}

func NewNotificationController(store *storage.Storage) *NotificationController {
	return &NotificationController{Store: store}
}

// GetNotifications godoc
// @Summary The caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /notifications [get]
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	notifications, err := nc.Store.GetUserNotifications(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": notifications})
}

// MarkAsRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]interface{}
// @Router /notifications/{id}/read [post]
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	if err := nc.Store.MarkNotificationAsRead(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetUnreadCount godoc
// @Summary Count of unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /notifications/unread-count [get]
func (nc *NotificationController) GetUnreadCount(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	count, err := nc.Store.GetUnreadNotificationCount(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}
