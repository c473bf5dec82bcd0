package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Community struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	GameID      *string   `gorm:"type:varchar(36)" json:"gameId"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	AdminUserID string    `gorm:"type:varchar(36)" json:"adminUserId"`
	MemberCount int       `gorm:"default:0" json:"memberCount"` // denormalized, adjusted on join/leave
	ImageURL    string    `json:"imageUrl"`
	IsPrivate   bool      `gorm:"default:false" json:"isPrivate"`
	CreatedAt   time.Time `json:"createdAt"`

	Game  *Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
	Admin User  `gorm:"foreignKey:AdminUserID" json:"-"`
}

func (cm *Community) BeforeCreate(tx *gorm.DB) error {
	if cm.ID == "" {
		cm.ID = uuid.NewString()
	}
	return nil
}
