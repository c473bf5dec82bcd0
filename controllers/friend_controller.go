package controllers

import (
	"net/http"

	"github.com/gamer-hub/api-go/models"
	"github.com/gamer-hub/api-go/storage"
	"github.com/gamer-hub/api-go/utils"
	"github.com/gin-gonic/gin"
)

type FriendController struct {
	Store *storage.Storage
}

func NewFriendController(store *storage.Storage) *FriendController {
	return &FriendController{Store: store}
}

// GetFriends godoc
// @Summary The caller's accepted friends
// @Tags friends
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /friends [get]
func (fc *FriendController) GetFriends(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	friends, err := fc.Store.GetFriends(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching friends"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": friends})
}

// GetOnlineFriends godoc
// @Summary Friends currently flagged online
// @Tags friends
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /friends/online [get]
func (fc *FriendController) GetOnlineFriends(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	friends, err := fc.Store.GetOnlineFriends(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching online friends"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": friends})
}

// SendFriendRequest godoc
// @Summary Send a friend request
// @Tags friends
// @Accept json
// @Produce json
// @Success 201 {object} models.Friendship
// @Router /friends/requests [post]
func (fc *FriendController) SendFriendRequest(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		AddresseeID string `json:"addresseeId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.AddresseeID == user.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send a friend request to yourself"})
		return
	}

	if _, err := fc.Store.GetUser(input.AddresseeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	friendship, err := fc.Store.SendFriendRequest(user.UserID, input.AddresseeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send friend request"})
		return
	}

	fc.Store.CreateNotification(&models.Notification{
		UserID:  input.AddresseeID,
		Type:    models.NotificationFriendRequest,
		Title:   "New friend request",
		Message: "You have a new friend request",
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": friendship})
}

// AcceptFriendRequest godoc
// @Summary Accept a pending friend request
// @Tags friends
// @Produce json
// @Param id path string true "Friendship ID"
// @Success 200 {object} map[string]interface{}
// @Router /friends/requests/{id}/accept [post]
func (fc *FriendController) AcceptFriendRequest(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	friendship, err := fc.Store.GetFriendship(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}

	// Only the addressee can accept.
	if friendship.AddresseeID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your friend request"})
		return
	}

	if err := fc.Store.AcceptFriendRequest(friendship.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept friend request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Friend request accepted"})
}

// RejectFriendRequest godoc
// @Summary Reject a pending friend request
// @Description Deletes the friendship row; no rejected state is kept
// @Tags friends
// @Produce json
// @Param id path string true "Friendship ID"
// @Success 200 {object} map[string]interface{}
// @Router /friends/requests/{id}/reject [post]
func (fc *FriendController) RejectFriendRequest(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	friendship, err := fc.Store.GetFriendship(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}

	if friendship.AddresseeID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your friend request"})
		return
	}

	if err := fc.Store.RejectFriendRequest(friendship.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject friend request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Friend request rejected"})
}

// GetFriendRequests godoc
// @Summary Incoming pending friend requests with requester profiles
// @Tags friends
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /friends/requests [get]
func (fc *FriendController) GetFriendRequests(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	requests, err := fc.Store.GetFriendRequests(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching friend requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": requests})
}

// GetFriendshipStatus returns the status between the caller and another user.
func (fc *FriendController) GetFriendshipStatus(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	status, err := fc.Store.GetFriendshipStatus(user.UserID, c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching friendship status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}
