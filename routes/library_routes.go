package routes

import (
	"github.com/gamer-hub/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupLibraryRoutes(protected *gin.RouterGroup, libraryController *controllers.LibraryController) {
	library := protected.Group("/library")
	{
		library.POST("", libraryController.AddGameToLibrary)
		library.PUT("/:gameId", libraryController.UpdateLibraryEntry)
		library.DELETE("/:gameId", libraryController.RemoveGameFromLibrary)
	}

	users := protected.Group("/users")
	{
		users.GET("/:userId/games", libraryController.GetUserGames)
	}
}
