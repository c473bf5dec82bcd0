package storage

import (
	"github.com/gamer-hub/api-go/models"
	"gorm.io/gorm"
)

func (s *Storage) GetAllCommunities() ([]models.Community, error) {
	var communities []models.Community
	err := s.DB.Preload("Game").Order("member_count DESC").Find(&communities).Error
	return communities, err
}

func (s *Storage) GetCommunity(id string) (*models.Community, error) {
	var community models.Community
	if err := s.DB.Preload("Game").First(&community, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

func (s *Storage) CreateCommunity(community *models.Community) error {
	return s.DB.Create(community).Error
}

func (s *Storage) GetCommunitiesByGame(gameID string) ([]models.Community, error) {
	var communities []models.Community
	err := s.DB.
		Where("game_id = ?", gameID).
		Order("member_count DESC").
		Find(&communities).Error
	return communities, err
}

// JoinCommunity inserts a membership row and bumps the denormalized
// member_count in the same transaction. There is no duplicate-membership
// check; repeated joins add rows and inflate the counter.
func (s *Storage) JoinCommunity(communityID, userID string) error {
	tx := s.DB.Begin()

	member := models.CommunityMember{
		CommunityID: communityID,
		UserID:      userID,
	}
	if err := tx.Create(&member).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Community{}).
		Where("id = ?", communityID).
		UpdateColumn("member_count", gorm.Expr("member_count + 1")).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// LeaveCommunity removes the membership row and decrements member_count in
// the same transaction.
func (s *Storage) LeaveCommunity(communityID, userID string) error {
	tx := s.DB.Begin()

	if err := tx.
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Delete(&models.CommunityMember{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Community{}).
		Where("id = ?", communityID).
		UpdateColumn("member_count", gorm.Expr("member_count - 1")).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// GetUserCommunities returns the communities the user is a member of.
func (s *Storage) GetUserCommunities(userID string) ([]models.Community, error) {
	var communities []models.Community
	err := s.DB.
		Joins("JOIN community_members ON community_members.community_id = communities.id").
		Where("community_members.user_id = ?", userID).
		Find(&communities).Error
	return communities, err
}

func (s *Storage) IsCommunityMember(communityID, userID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error
	return count > 0, err
}
