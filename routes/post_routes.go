package routes

import (
	"github.com/gamer-hub/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController) {
	posts := protected.Group("/posts")
	{
		posts.GET("", postController.GetFeed)
		posts.POST("", postController.CreatePost)
		posts.GET("/:id", postController.GetPost)
		posts.DELETE("/:id", postController.DeletePost)

		// Likes
		posts.POST("/:id/like", postController.LikePost)
		posts.POST("/:id/unlike", postController.UnlikePost)
		posts.GET("/:id/liked", postController.IsPostLiked)

		// Comments
		posts.GET("/:id/comments", postController.GetPostComments)
		posts.POST("/:id/comments", postController.CreateComment)
	}

	// Aggregated feed across the caller's communities
	protected.GET("/feed/communities", postController.GetCommunityFeed)

	// User posts routes
	users := protected.Group("/users")
	{
		users.GET("/:userId/posts", postController.GetUserPosts)
	}
}
