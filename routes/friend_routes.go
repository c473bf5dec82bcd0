package routes

import (
	"github.com/gamer-hub/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupFriendRoutes(protected *gin.RouterGroup, friendController *controllers.FriendController) {
	friends := protected.Group("/friends")
	{
		friends.GET("", friendController.GetFriends)
		friends.GET("/online", friendController.GetOnlineFriends)

		// Requests
		friends.POST("/requests", friendController.SendFriendRequest)
		friends.GET("/requests", friendController.GetFriendRequests)
		friends.POST("/requests/:id/accept", friendController.AcceptFriendRequest)
		friends.POST("/requests/:id/reject", friendController.RejectFriendRequest)

		friends.GET("/status/:userId", friendController.GetFriendshipStatus)
	}
}
