package controllers

import (
	"net/http"
	"strconv"

	"github.com/gamer-hub/api-go/presence"
	"github.com/gamer-hub/api-go/storage"
	"github.com/gamer-hub/api-go/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	Store    *storage.Storage
	Presence *presence.Tracker
}

func NewUserController(store *storage.Storage, tracker *presence.Tracker) *UserController {
	return &UserController{Store: store, Presence: tracker}
}

// GetUserProfile godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId} [get]
func (uc *UserController) GetUserProfile(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	userID := c.Param("userId")

	targetUser, err := uc.Store.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	friendshipStatus := ""
	if currentUser.UserID != targetUser.ID {
		friendshipStatus, _ = uc.Store.GetFriendshipStatus(currentUser.UserID, targetUser.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user":             targetUser,
			"isOwnProfile":     currentUser.UserID == targetUser.ID,
			"friendshipStatus": friendshipStatus,
		},
	})
}

// SearchUsers godoc
// @Summary Search users by username or name
// @Tags users
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} map[string]interface{}
// @Router /users/search [get]
func (uc *UserController) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	users, err := uc.Store.SearchUsers(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

// UpdateOnlineStatus godoc
// @Summary Heartbeat the caller's online status
// @Description Persists the online flag and refreshes the presence TTL key
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/online-status [post]
func (uc *UserController) UpdateOnlineStatus(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		IsOnline    bool   `json:"isOnline"`
		CurrentGame string `json:"currentGame"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := uc.Store.UpdateUserOnlineStatus(user.UserID, input.IsOnline, input.CurrentGame); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update online status"})
		return
	}

	if input.IsOnline {
		uc.Presence.Heartbeat(c.Request.Context(), user.UserID, input.CurrentGame)
	} else {
		uc.Presence.Clear(c.Request.Context(), user.UserID)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetLeaderboard godoc
// @Summary Top users ranked by XP points
// @Tags users
// @Produce json
// @Param limit query integer false "Number of users (default: 10, max: 50)"
// @Success 200 {object} map[string]interface{}
// @Router /leaderboard [get]
func (uc *UserController) GetLeaderboard(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	users, err := uc.Store.TopUsersByXP(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}
