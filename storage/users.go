package storage

import (
	"strings"
	"time"

	"github.com/gamer-hub/api-go/models"
	"gorm.io/gorm/clause"
)

func (s *Storage) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

// UpsertUser inserts the user or, on an id conflict, updates the existing row.
// Used by provider logins where the account is created on first login.
func (s *Storage) UpsertUser(user *models.User) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(user).Error
}

func (s *Storage) UpdateUserProfile(id string, updates map[string]interface{}) (*models.User, error) {
	updates["updated_at"] = time.Now()
	if err := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetUser(id)
}

func (s *Storage) UpdateUserOnlineStatus(id string, isOnline bool, currentGame string) error {
	return s.DB.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_online":    isOnline,
		"current_game": currentGame,
		"updated_at":   time.Now(),
	}).Error
}

// SearchUsers matches the query as a case-insensitive substring of the
// username or first/last name.
func (s *Storage) SearchUsers(query string) ([]models.User, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var users []models.User
	err := s.DB.
		Where("LOWER(username) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			pattern, pattern, pattern).
		Find(&users).Error
	return users, err
}

// TopUsersByXP returns the highest-ranked users for the leaderboard.
func (s *Storage) TopUsersByXP(limit int) ([]models.User, error) {
	var users []models.User
	err := s.DB.Order("xp_points DESC").Limit(limit).Find(&users).Error
	return users, err
}
