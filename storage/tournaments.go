package storage

import (
	"github.com/gamer-hub/api-go/models"
)

// JoinTournament adds a participant row. The composite unique index on
// (tournament_id, user_id) makes a repeated join fail.
func (s *Storage) JoinTournament(tournamentID, userID string) error {
	participant := models.TournamentParticipant{
		TournamentID: tournamentID,
		UserID:       userID,
	}
	return s.DB.Create(&participant).Error
}

func (s *Storage) LeaveTournament(tournamentID, userID string) error {
	return s.DB.
		Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		Delete(&models.TournamentParticipant{}).Error
}

func (s *Storage) IsUserInTournament(tournamentID, userID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.TournamentParticipant{}).
		Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetTournamentParticipantCount supports the maxPlayers display on
// tournament posts.
func (s *Storage) GetTournamentParticipantCount(tournamentID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.TournamentParticipant{}).
		Where("tournament_id = ?", tournamentID).
		Count(&count).Error
	return count, err
}
