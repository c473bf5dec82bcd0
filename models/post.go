package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Post types. Achievement and tournament posts carry a typed metadata payload,
// see metadata.go.
const (
	PostTypeText        = "text"
	PostTypeImage       = "image"
	PostTypeVideo       = "video"
	PostTypeAchievement = "achievement"
	PostTypeTournament  = "tournament"
)

type Post struct {
	ID            string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID        string         `gorm:"type:varchar(36);not null" json:"userId"`
	CommunityID   *string        `gorm:"type:varchar(36)" json:"communityId"`
	GameID        *string        `gorm:"type:varchar(36)" json:"gameId"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	MediaURLs     pq.StringArray `gorm:"type:text[]" json:"mediaUrls"`
	PostType      string         `gorm:"not null;type:varchar(20)" json:"postType"`
	Metadata      datatypes.JSON `json:"metadata"`
	LikesCount    int            `gorm:"default:0" json:"likesCount"`
	CommentsCount int            `gorm:"default:0" json:"commentsCount"`
	SharesCount   int            `gorm:"default:0" json:"sharesCount"`
	CreatedAt     time.Time      `json:"createdAt"`

	User      User       `gorm:"foreignKey:UserID" json:"user"`
	Community *Community `gorm:"foreignKey:CommunityID" json:"community,omitempty"`
	Game      *Game      `gorm:"foreignKey:GameID" json:"game,omitempty"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
