package controllers

import (
	"net/http"

	"github.com/gamer-hub/api-go/models"
	"github.com/gamer-hub/api-go/storage"
	"github.com/gamer-hub/api-go/utils"
	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	Store *storage.Storage
}

func NewCommunityController(store *storage.Storage) *CommunityController {
	return &CommunityController{Store: store}
}

// GetAllCommunities godoc
// @Summary List communities ordered by member count
// @Tags communities
// @Produce json
// @Param gameId query string false "Filter by game"
// @Success 200 {object} map[string]interface{}
// @Router /communities [get]
func (cc *CommunityController) GetAllCommunities(c *gin.Context) {
	if gameID := c.Query("gameId"); gameID != "" {
		communities, err := cc.Store.GetCommunitiesByGame(gameID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching communities"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": communities})
		return
	}

	communities, err := cc.Store.GetAllCommunities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching communities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": communities})
}

func (cc *CommunityController) GetCommunity(c *gin.Context) {
	community, err := cc.Store.GetCommunity(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": community})
}

// CreateCommunity godoc
// @Summary Create a community with the caller as admin
// @Tags communities
// @Accept json
// @Produce json
// @Success 201 {object} models.Community
// @Router /communities [post]
func (cc *CommunityController) CreateCommunity(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		GameID      *string `json:"gameId"`
		ImageURL    string  `json:"imageUrl"`
		IsPrivate   bool    `json:"isPrivate"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	community := models.Community{
		Name:        input.Name,
		Description: input.Description,
		GameID:      input.GameID,
		AdminUserID: user.UserID,
		ImageURL:    input.ImageURL,
		IsPrivate:   input.IsPrivate,
	}

	if err := cc.Store.CreateCommunity(&community); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create community"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": community})
}

// JoinCommunity godoc
// @Summary Join a community
// @Description Adds a membership row and increments the member count
// @Tags communities
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} map[string]interface{}
// @Router /communities/{id}/join [post]
func (cc *CommunityController) JoinCommunity(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	communityID := c.Param("id")

	if _, err := cc.Store.GetCommunity(communityID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	if err := cc.Store.JoinCommunity(communityID, user.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join community"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Joined community"})
}

// LeaveCommunity godoc
// @Summary Leave a community
// @Tags communities
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} map[string]interface{}
// @Router /communities/{id}/leave [post]
func (cc *CommunityController) LeaveCommunity(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	if err := cc.Store.LeaveCommunity(c.Param("id"), user.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave community"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Left community"})
}

// GetUserCommunities returns the communities the caller belongs to.
func (cc *CommunityController) GetUserCommunities(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	communities, err := cc.Store.GetUserCommunities(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching communities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": communities})
}

// GetCommunityPosts godoc
// @Summary Posts in a community, newest first
// @Tags communities
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} map[string]interface{}
// @Router /communities/{id}/posts [get]
func (cc *CommunityController) GetCommunityPosts(c *gin.Context) {
	posts, err := cc.Store.GetCommunityPosts(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
}
