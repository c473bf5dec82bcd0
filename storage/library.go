package storage

import (
	"github.com/gamer-hub/api-go/models"
)

// GetUserGames returns the user's library entries joined with the game
// catalog rows, most recently added first.
func (s *Storage) GetUserGames(userID string) ([]models.UserGame, error) {
	var entries []models.UserGame
	err := s.DB.
		Preload("Game").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *Storage) AddGameToLibrary(entry *models.UserGame) error {
	return s.DB.Create(entry).Error
}

func (s *Storage) RemoveGameFromLibrary(userID, gameID string) error {
	return s.DB.
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.UserGame{}).Error
}

// UpdateLibraryEntry adjusts the mutable fields of a library entry
// (hours played, favorite flag, achievements).
func (s *Storage) UpdateLibraryEntry(userID, gameID string, updates map[string]interface{}) error {
	return s.DB.Model(&models.UserGame{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Updates(updates).Error
}
