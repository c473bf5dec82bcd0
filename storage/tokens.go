package storage

import (
	"github.com/gamer-hub/api-go/models"
)

func (s *Storage) CreateRefreshToken(token *models.RefreshToken) error {
	return s.DB.Create(token).Error
}

func (s *Storage) GetRefreshToken(token string) (*models.RefreshToken, error) {
	var refreshToken models.RefreshToken
	if err := s.DB.Where("token = ?", token).First(&refreshToken).Error; err != nil {
		return nil, err
	}
	return &refreshToken, nil
}

func (s *Storage) SaveRefreshToken(token *models.RefreshToken) error {
	return s.DB.Save(token).Error
}

func (s *Storage) DeleteRefreshToken(token string) (int64, error) {
	result := s.DB.Where("token = ?", token).Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}

func (s *Storage) DeleteRefreshTokenByID(id uint) error {
	return s.DB.Delete(&models.RefreshToken{}, id).Error
}
