package controllers

import (
	"net/http"

	"github.com/gamer-hub/api-go/models"
	"github.com/gamer-hub/api-go/storage"
	"github.com/gamer-hub/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type LibraryController struct {
	Store *storage.Storage
}

func NewLibraryController(store *storage.Storage) *LibraryController {
	return &LibraryController{Store: store}
}

// GetUserGames godoc
// @Summary A user's game library with catalog details
// @Tags library
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/games [get]
func (lc *LibraryController) GetUserGames(c *gin.Context) {
	entries, err := lc.Store.GetUserGames(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching game library"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// AddGameToLibrary godoc
// @Summary Add a game to the caller's library
// @Tags library
// @Accept json
// @Produce json
// @Success 201 {object} models.UserGame
// @Router /library [post]
func (lc *LibraryController) AddGameToLibrary(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		GameID       string   `json:"gameId" binding:"required"`
		HoursPlayed  int      `json:"hoursPlayed"`
		IsFavorite   bool     `json:"isFavorite"`
		Achievements []string `json:"achievements"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := lc.Store.GetGame(input.GameID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	entry := models.UserGame{
		UserID:       user.UserID,
		GameID:       input.GameID,
		HoursPlayed:  input.HoursPlayed,
		IsFavorite:   input.IsFavorite,
		Achievements: pq.StringArray(input.Achievements),
	}

	if err := lc.Store.AddGameToLibrary(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add game to library"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": entry})
}

// UpdateLibraryEntry godoc
// @Summary Update hours played or favorite flag for a library entry
// @Tags library
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Router /library/{gameId} [put]
func (lc *LibraryController) UpdateLibraryEntry(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		HoursPlayed  *int     `json:"hoursPlayed"`
		IsFavorite   *bool    `json:"isFavorite"`
		Achievements []string `json:"achievements"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.HoursPlayed != nil {
		updates["hours_played"] = *input.HoursPlayed
	}
	if input.IsFavorite != nil {
		updates["is_favorite"] = *input.IsFavorite
	}
	if input.Achievements != nil {
		updates["achievements"] = pq.StringArray(input.Achievements)
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := lc.Store.UpdateLibraryEntry(user.UserID, c.Param("gameId"), updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update library entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Library entry updated"})
}

// RemoveGameFromLibrary godoc
// @Summary Remove a game from the caller's library
// @Tags library
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Router /library/{gameId} [delete]
func (lc *LibraryController) RemoveGameFromLibrary(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	if err := lc.Store.RemoveGameFromLibrary(user.UserID, c.Param("gameId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove game from library"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Game removed from library"})
}
