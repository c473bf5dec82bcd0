package routes

import (
	"github.com/gamer-hub/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController) {
	users := protected.Group("/users")
	{
		users.GET("/search", userController.SearchUsers)
		users.GET("/:userId", userController.GetUserProfile)

		// Presence heartbeat
		users.POST("/online-status", userController.UpdateOnlineStatus)
	}

	protected.GET("/leaderboard", userController.GetLeaderboard)
}
