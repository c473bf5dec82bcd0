package models

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// Tournament post lifecycle states.
const (
	TournamentStatusUpcoming  = "upcoming"
	TournamentStatusLive      = "live"
	TournamentStatusCompleted = "completed"
)

type AchievementMetadata struct {
	Title string `json:"title"`
	XP    int    `json:"xp"`
	Icon  string `json:"icon,omitempty"`
}

type TournamentMetadata struct {
	Status     string `json:"status"`
	MaxPlayers int    `json:"maxPlayers"`
	GameMode   string `json:"gameMode,omitempty"`
	PrizePool  string `json:"prizePool,omitempty"`
	StartsAt   string `json:"startsAt,omitempty"`
}

type VideoMetadata struct {
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	ThumbnailURL    string `json:"thumbnailUrl,omitempty"`
}

// ValidatePostMetadata checks the metadata payload against the post type at the
// write boundary. Text and image posts carry no required payload.
func ValidatePostMetadata(postType string, metadata datatypes.JSON) error {
	switch postType {
	case PostTypeText, PostTypeImage:
		return nil
	case PostTypeVideo:
		if len(metadata) == 0 {
			return nil
		}
		var m VideoMetadata
		if err := json.Unmarshal(metadata, &m); err != nil {
			return fmt.Errorf("invalid video metadata: %v", err)
		}
		return nil
	case PostTypeAchievement:
		var m AchievementMetadata
		if err := json.Unmarshal(metadata, &m); err != nil {
			return fmt.Errorf("invalid achievement metadata: %v", err)
		}
		if m.Title == "" {
			return fmt.Errorf("achievement metadata requires a title")
		}
		if m.XP < 0 {
			return fmt.Errorf("achievement xp cannot be negative")
		}
		return nil
	case PostTypeTournament:
		var m TournamentMetadata
		if err := json.Unmarshal(metadata, &m); err != nil {
			return fmt.Errorf("invalid tournament metadata: %v", err)
		}
		if m.MaxPlayers <= 0 {
			return fmt.Errorf("tournament metadata requires maxPlayers > 0")
		}
		switch m.Status {
		case TournamentStatusUpcoming, TournamentStatusLive, TournamentStatusCompleted:
			return nil
		default:
			return fmt.Errorf("unknown tournament status %q", m.Status)
		}
	default:
		return fmt.Errorf("unknown post type %q", postType)
	}
}
