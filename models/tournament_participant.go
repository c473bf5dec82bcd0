package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TournamentParticipant links a user to a tournament post. The composite
// unique index is the only duplicate guard among the join tables.
type TournamentParticipant struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TournamentID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_tournament_participant" json:"tournamentId"`
	UserID       string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_tournament_participant" json:"userId"`
	JoinedAt     time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	Tournament Post `gorm:"foreignKey:TournamentID" json:"-"`
	User       User `gorm:"foreignKey:UserID" json:"-"`
}

func (tp *TournamentParticipant) BeforeCreate(tx *gorm.DB) error {
	if tp.ID == "" {
		tp.ID = uuid.NewString()
	}
	return nil
}
