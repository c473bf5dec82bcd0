package models

import (
	"time"

	"gorm.io/gorm"
)

type RefreshToken struct {
	gorm.Model
	UserID         string    `gorm:"type:varchar(36);not null"`
	Token          string    `gorm:"not null;uniqueIndex"`
	ExpirationDate time.Time `gorm:"not null"`
}
