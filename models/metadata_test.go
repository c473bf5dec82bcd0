package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestValidatePostMetadata(t *testing.T) {
	tests := []struct {
		name     string
		postType string
		metadata string
		wantErr  bool
	}{
		{"text needs nothing", PostTypeText, "", false},
		{"image needs nothing", PostTypeImage, "", false},
		{"video metadata optional", PostTypeVideo, "", false},
		{"video with metadata", PostTypeVideo, `{"durationSeconds":30}`, false},
		{"video with garbage", PostTypeVideo, `not json`, true},
		{"achievement requires title", PostTypeAchievement, `{"xp":100}`, true},
		{"achievement negative xp", PostTypeAchievement, `{"title":"First Blood","xp":-5}`, true},
		{"achievement valid", PostTypeAchievement, `{"title":"First Blood","xp":100}`, false},
		{"tournament requires maxPlayers", PostTypeTournament, `{"status":"upcoming"}`, true},
		{"tournament unknown status", PostTypeTournament, `{"status":"cancelled","maxPlayers":8}`, true},
		{"tournament valid", PostTypeTournament, `{"status":"live","maxPlayers":16}`, false},
		{"unknown post type", "poll", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePostMetadata(tt.postType, datatypes.JSON(tt.metadata))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
