package controllers

import (
	"net/http"

	"github.com/gamer-hub/api-go/models"
	"github.com/gamer-hub/api-go/storage"
	"github.com/gamer-hub/api-go/utils"
	"github.com/gin-gonic/gin"
)

type GameController struct {
	Store *storage.Storage
}

func NewGameController(store *storage.Storage) *GameController {
	return &GameController{Store: store}
}

// GetAllGames godoc
// @Summary List the active game catalog
// @Tags games
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /games [get]
func (gc *GameController) GetAllGames(c *gin.Context) {
	games, err := gc.Store.GetAllGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching games"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": games})
}

func (gc *GameController) GetGame(c *gin.Context) {
	game, err := gc.Store.GetGame(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": game})
}

// SearchGames godoc
// @Summary Search active games by name
// @Tags games
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} map[string]interface{}
// @Router /games/search [get]
func (gc *GameController) SearchGames(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	games, err := gc.Store.SearchGames(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching games"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": games})
}

// CreateGame godoc
// @Summary Add a game to the catalog (admin only)
// @Tags games
// @Accept json
// @Produce json
// @Success 201 {object} models.Game
// @Router /games [post]
func (gc *GameController) CreateGame(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil || user.Role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	var input struct {
		Name          string `json:"name" binding:"required"`
		Genre         string `json:"genre"`
		Platform      string `json:"platform"`
		CoverImageURL string `json:"coverImageUrl"`
		Description   string `json:"description"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game := models.Game{
		Name:          input.Name,
		Genre:         input.Genre,
		Platform:      input.Platform,
		CoverImageURL: input.CoverImageURL,
		Description:   input.Description,
		IsActive:      true,
	}

	if err := gc.Store.CreateGame(&game); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": game})
}
