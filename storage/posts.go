package storage

import (
	"github.com/gamer-hub/api-go/models"
	"gorm.io/gorm"
)

// GetAllPosts returns the global feed joined with author, game and community,
// newest first.
func (s *Storage) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	err := s.DB.
		Preload("User").
		Preload("Game").
		Preload("Community").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// GetPostsByType filters the feed to one post type (e.g. video for clips).
func (s *Storage) GetPostsByType(postType string) ([]models.Post, error) {
	var posts []models.Post
	err := s.DB.
		Preload("User").
		Preload("Game").
		Preload("Community").
		Where("post_type = ?", postType).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *Storage) GetPost(id string) (*models.Post, error) {
	var post models.Post
	if err := s.DB.Preload("User").Preload("Game").Preload("Community").
		First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost validates the per-type metadata payload before inserting.
func (s *Storage) CreatePost(post *models.Post) error {
	if err := models.ValidatePostMetadata(post.PostType, post.Metadata); err != nil {
		return err
	}
	return s.DB.Create(post).Error
}

func (s *Storage) GetUserPosts(userID string) ([]models.Post, error) {
	var posts []models.Post
	err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *Storage) GetCommunityPosts(communityID string) ([]models.Post, error) {
	var posts []models.Post
	err := s.DB.
		Preload("User").
		Where("community_id = ?", communityID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// GetPostsFromUserCommunities returns posts from every community the user
// belongs to, newest first.
func (s *Storage) GetPostsFromUserCommunities(userID string) ([]models.Post, error) {
	var posts []models.Post
	err := s.DB.
		Preload("User").
		Joins("JOIN community_members ON community_members.community_id = posts.community_id").
		Where("community_members.user_id = ?", userID).
		Order("posts.created_at DESC").
		Find(&posts).Error
	return posts, err
}

// DeletePost removes the post if it belongs to the user. Returns false when
// no matching row was deleted.
func (s *Storage) DeletePost(id, userID string) (bool, error) {
	result := s.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Post{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// LikePost inserts a like row and bumps likes_count in the same transaction.
// Repeated likes from the same user are not rejected.
func (s *Storage) LikePost(postID, userID string) error {
	tx := s.DB.Begin()

	like := models.PostLike{
		PostID: postID,
		UserID: userID,
	}
	if err := tx.Create(&like).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// UnlikePost removes the like row and decrements likes_count in the same
// transaction.
func (s *Storage) UnlikePost(postID, userID string) error {
	tx := s.DB.Begin()

	if err := tx.
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLike{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (s *Storage) IsPostLiked(postID, userID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetPostComments returns the comments joined with their authors, newest
// first.
func (s *Storage) GetPostComments(postID string) ([]models.PostComment, error) {
	var comments []models.PostComment
	err := s.DB.
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// CreateComment inserts the comment and bumps comments_count in the same
// transaction.
func (s *Storage) CreateComment(comment *models.PostComment) error {
	tx := s.DB.Begin()

	if err := tx.Create(comment).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Post{}).
		Where("id = ?", comment.PostID).
		UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
