package controllers

import (
	"net/http"
	"time"

	"github.com/gamer-hub/api-go/models"
	"github.com/gamer-hub/api-go/storage"
	"github.com/gamer-hub/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type PostController struct {
	Store *storage.Storage
}

type CreatePostRequest struct {
	Content     string         `json:"content" binding:"required"`
	PostType    string         `json:"postType" binding:"required,oneof=text image video achievement tournament"`
	MediaURLs   []string       `json:"mediaUrls"`
	CommunityID *string        `json:"communityId"`
	GameID      *string        `json:"gameId"`
	Metadata    datatypes.JSON `json:"metadata"`
}

func NewPostController(store *storage.Storage) *PostController {
	return &PostController{Store: store}
}

// GetFeed godoc
// @Summary Global post feed joined with author, game and community
// @Tags posts
// @Produce json
// @Param type query string false "Filter by post type (e.g. video for clips)"
// @Success 200 {object} map[string]interface{}
// @Router /posts [get]
func (pc *PostController) GetFeed(c *gin.Context) {
	if postType := c.Query("type"); postType != "" {
		posts, err := pc.Store.GetPostsByType(postType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
		return
	}

	posts, err := pc.Store.GetAllPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
}

// GetCommunityFeed returns posts from the caller's communities.
func (pc *PostController) GetCommunityFeed(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	posts, err := pc.Store.GetPostsFromUserCommunities(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
}

func (pc *PostController) GetPost(c *gin.Context) {
	post, err := pc.Store.GetPost(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": post})
}

// GetUserPosts returns a user's posts, newest first.
func (pc *PostController) GetUserPosts(c *gin.Context) {
	posts, err := pc.Store.GetUserPosts(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": posts})
}

// CreatePost godoc
// @Summary Create a post
// @Description Validates the metadata payload against the post type
// @Tags posts
// @Accept json
// @Produce json
// @Param post body CreatePostRequest true "Post creation request"
// @Success 201 {object} models.Post
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := models.Post{
		UserID:      user.UserID,
		Content:     req.Content,
		PostType:    req.PostType,
		MediaURLs:   pq.StringArray(req.MediaURLs),
		CommunityID: req.CommunityID,
		GameID:      req.GameID,
		Metadata:    req.Metadata,
		CreatedAt:   time.Now(),
	}

	if err := pc.Store.CreatePost(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": post})
}

// DeletePost godoc
// @Summary Delete own post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	deleted, err := pc.Store.DeletePost(c.Param("id"), user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted"})
}

// LikePost godoc
// @Summary Like a post
// @Description Inserts a like row and increments the like counter
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/like [post]
func (pc *PostController) LikePost(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	postID := c.Param("id")

	post, err := pc.Store.GetPost(postID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := pc.Store.LikePost(postID, user.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		return
	}

	// Notify the author on likes from other users.
	if post.UserID != user.UserID {
		pc.Store.CreateNotification(&models.Notification{
			UserID:  post.UserID,
			Type:    models.NotificationPostLike,
			Title:   "New like",
			Message: "Someone liked your post",
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "liked": true})
}

// UnlikePost godoc
// @Summary Remove a like from a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/unlike [post]
func (pc *PostController) UnlikePost(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	if err := pc.Store.UnlikePost(c.Param("id"), user.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "liked": false})
}

// IsPostLiked reports whether the caller has liked the post.
func (pc *PostController) IsPostLiked(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	liked, err := pc.Store.IsPostLiked(c.Param("id"), user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking like status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "liked": liked})
}

// GetPostComments godoc
// @Summary Comments on a post joined with their authors
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/comments [get]
func (pc *PostController) GetPostComments(c *gin.Context) {
	comments, err := pc.Store.GetPostComments(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": comments})
}

// CreateComment godoc
// @Summary Comment on a post
// @Description Inserts the comment and increments the comment counter
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 201 {object} models.PostComment
// @Router /posts/{id}/comments [post]
func (pc *PostController) CreateComment(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	postID := c.Param("id")

	post, err := pc.Store.GetPost(postID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var input struct {
		Content string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := models.PostComment{
		PostID:  postID,
		UserID:  user.UserID,
		Content: input.Content,
	}

	if err := pc.Store.CreateComment(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	if post.UserID != user.UserID {
		pc.Store.CreateNotification(&models.Notification{
			UserID:  post.UserID,
			Type:    models.NotificationComment,
			Title:   "New comment",
			Message: "Someone commented on your post",
		})
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": comment})
}
