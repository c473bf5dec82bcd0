package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UserGame is a library entry linking a user to a game in their collection.
type UserGame struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID       string         `gorm:"type:varchar(36);not null" json:"userId"`
	GameID       string         `gorm:"type:varchar(36);not null" json:"gameId"`
	Achievements pq.StringArray `gorm:"type:text[]" json:"achievements"`
	HoursPlayed  int            `gorm:"default:0" json:"hoursPlayed"`
	IsFavorite   bool           `gorm:"default:false" json:"isFavorite"`
	AddedAt      time.Time      `gorm:"autoCreateTime" json:"addedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Game Game `gorm:"foreignKey:GameID" json:"game"`
}

func (ug *UserGame) BeforeCreate(tx *gorm.DB) error {
	if ug.ID == "" {
		ug.ID = uuid.NewString()
	}
	return nil
}
