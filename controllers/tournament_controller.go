package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gamer-hub/api-go/models"
	"github.com/gamer-hub/api-go/storage"
	"github.com/gamer-hub/api-go/utils"
	"github.com/gin-gonic/gin"
)

// Tournaments are posts with postType "tournament"; participation rows live
// in their own guarded join table.
type TournamentController struct {
	Store *storage.Storage
}

func NewTournamentController(store *storage.Storage) *TournamentController {
	return &TournamentController{Store: store}
}

// JoinTournament godoc
// @Summary Join a tournament
// @Description Fails on a repeated join for the same user due to the unique participant constraint
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament post ID"
// @Success 200 {object} map[string]interface{}
// @Router /tournaments/{id}/join [post]
func (tc *TournamentController) JoinTournament(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	tournamentID := c.Param("id")

	post, err := tc.Store.GetPost(tournamentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
		return
	}
	if post.PostType != models.PostTypeTournament {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post is not a tournament"})
		return
	}

	// Reject joins once the field is full.
	var meta models.TournamentMetadata
	if len(post.Metadata) > 0 {
		if err := json.Unmarshal(post.Metadata, &meta); err == nil && meta.MaxPlayers > 0 {
			count, countErr := tc.Store.GetTournamentParticipantCount(tournamentID)
			if countErr == nil && count >= int64(meta.MaxPlayers) {
				c.JSON(http.StatusConflict, gin.H{"error": "Tournament is full"})
				return
			}
		}
	}

	if err := tc.Store.JoinTournament(tournamentID, user.UserID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already joined this tournament"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Joined tournament"})
}

// LeaveTournament godoc
// @Summary Leave a tournament
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament post ID"
// @Success 200 {object} map[string]interface{}
// @Router /tournaments/{id}/leave [post]
func (tc *TournamentController) LeaveTournament(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	if err := tc.Store.LeaveTournament(c.Param("id"), user.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave tournament"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Left tournament"})
}

// GetParticipants godoc
// @Summary Participant count and caller membership for a tournament
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament post ID"
// @Success 200 {object} map[string]interface{}
// @Router /tournaments/{id}/participants [get]
func (tc *TournamentController) GetParticipants(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	tournamentID := c.Param("id")

	count, err := tc.Store.GetTournamentParticipantCount(tournamentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting participants"})
		return
	}

	joined, err := tc.Store.IsUserInTournament(tournamentID, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking participation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"participantCount": count,
			"joined":           joined,
		},
	})
}
