package routes

import (
	"github.com/gamer-hub/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupNotificationRoutes(protected *gin.RouterGroup, notificationController *controllers.NotificationController) {
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", notificationController.GetNotifications)
		notifications.GET("/unread-count", notificationController.GetUnreadCount)
		notifications.POST("/:id/read", notificationController.MarkAsRead)
	}
}
