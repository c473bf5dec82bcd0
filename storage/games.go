package storage

import (
	"strings"

	"github.com/gamer-hub/api-go/models"
)

// GetAllGames returns the active catalog ordered by name.
func (s *Storage) GetAllGames() ([]models.Game, error) {
	var games []models.Game
	err := s.DB.Where("is_active = ?", true).Order("name DESC").Find(&games).Error
	return games, err
}

func (s *Storage) GetGame(id string) (*models.Game, error) {
	var game models.Game
	if err := s.DB.First(&game, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) CreateGame(game *models.Game) error {
	return s.DB.Create(game).Error
}

// SearchGames matches active games whose name contains the query,
// case-insensitively.
func (s *Storage) SearchGames(query string) ([]models.Game, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var games []models.Game
	err := s.DB.
		Where("is_active = ? AND LOWER(name) LIKE ?", true, pattern).
		Find(&games).Error
	return games, err
}
