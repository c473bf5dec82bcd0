package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Friendship statuses. "blocked" is declared in the status domain but no
// operation currently sets or checks it.
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipBlocked  = "blocked"
)

type Friendship struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RequesterID string    `gorm:"type:varchar(36);not null" json:"requesterId"`
	AddresseeID string    `gorm:"type:varchar(36);not null" json:"addresseeId"`
	Status      string    `gorm:"not null;type:varchar(20)" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Requester User `gorm:"foreignKey:RequesterID" json:"requester"`
	Addressee User `gorm:"foreignKey:AddresseeID" json:"-"`
}

func (f *Friendship) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
