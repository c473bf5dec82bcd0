package routes

import (
	"github.com/gamer-hub/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupCommunityRoutes(protected *gin.RouterGroup, communityController *controllers.CommunityController) {
	communities := protected.Group("/communities")
	{
		communities.GET("", communityController.GetAllCommunities)
		communities.POST("", communityController.CreateCommunity)
		communities.GET("/mine", communityController.GetUserCommunities)
		communities.GET("/:id", communityController.GetCommunity)
		communities.GET("/:id/posts", communityController.GetCommunityPosts)

		// Membership
		communities.POST("/:id/join", communityController.JoinCommunity)
		communities.POST("/:id/leave", communityController.LeaveCommunity)
	}
}
