package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityMember struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CommunityID string    `gorm:"type:varchar(36);not null" json:"communityId"`
	UserID      string    `gorm:"type:varchar(36);not null" json:"userId"`
	Role        string    `gorm:"default:'member';type:varchar(20)" json:"role"` // admin, moderator, member
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	Community Community `gorm:"foreignKey:CommunityID" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

func (cm *CommunityMember) BeforeCreate(tx *gorm.DB) error {
	if cm.ID == "" {
		cm.ID = uuid.NewString()
	}
	return nil
}
