package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type User struct {
	ID              string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email           string         `gorm:"uniqueIndex;not null" json:"email"`
	Username        string         `gorm:"uniqueIndex;not null" json:"username"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	ProfileImageURL string         `json:"profileImageUrl"`
	Bio             string         `gorm:"type:text" json:"bio"`
	Password        *string        `json:"-"` // nil for provider-only accounts
	GoogleID        *string        `gorm:"uniqueIndex" json:"-"`
	Provider        string         `gorm:"default:'email'" json:"provider"`
	Role            string         `gorm:"default:'user';type:varchar(20)" json:"role"`
	XPPoints        int            `gorm:"column:xp_points;default:0" json:"xpPoints"`
	Level           int            `gorm:"default:1" json:"level"`
	GamingPlatforms pq.StringArray `gorm:"type:text[]" json:"gamingPlatforms"`
	TwitchUsername  string         `json:"twitchUsername"`
	YoutubeUsername string         `json:"youtubeUsername"`
	DiscordUsername string         `json:"discordUsername"`
	IsOnline        bool           `gorm:"default:false" json:"isOnline"`
	CurrentGame     string         `json:"currentGame"`
	Posts           []Post         `json:"-" gorm:"foreignKey:UserID"`
	UserGames       []UserGame     `json:"-" gorm:"foreignKey:UserID"`
	Notifications   []Notification `json:"-" gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
