package routes

import (
	"github.com/gamer-hub/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupGameRoutes(protected *gin.RouterGroup, gameController *controllers.GameController) {
	games := protected.Group("/games")
	{
		games.GET("", gameController.GetAllGames)
		games.GET("/search", gameController.SearchGames)
		games.GET("/:id", gameController.GetGame)

		// Admin only
		games.POST("", gameController.CreateGame)
	}
}
