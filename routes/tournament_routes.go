package routes

import (
	"github.com/gamer-hub/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupTournamentRoutes(protected *gin.RouterGroup, tournamentController *controllers.TournamentController) {
	tournaments := protected.Group("/tournaments")
	{
		tournaments.POST("/:id/join", tournamentController.JoinTournament)
		tournaments.POST("/:id/leave", tournamentController.LeaveTournament)
		tournaments.GET("/:id/participants", tournamentController.GetParticipants)
	}
}
