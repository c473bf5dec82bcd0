package storage

import (
	"testing"

	"github.com/gamer-hub/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchUsersCaseInsensitive(t *testing.T) {
	s := setupTestDB(t)
	alice := createTestUser(t, s, "ProGamer")
	alice.FirstName = "Alice"
	require.NoError(t, s.DB.Save(alice).Error)
	createTestUser(t, s, "casualplayer")

	users, err := s.SearchUsers("PROGAMER")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ProGamer", users[0].Username)

	// First name matches too
	users, err = s.SearchUsers("alice")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ProGamer", users[0].Username)
}

func TestUpsertUserUpdatesExisting(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "googler")

	user.FirstName = "Updated"
	user.ProfileImageURL = "https://lh3.example.com/photo.jpg"
	require.NoError(t, s.UpsertUser(user))

	stored, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", stored.FirstName)
	assert.Equal(t, "https://lh3.example.com/photo.jpg", stored.ProfileImageURL)

	// Still a single row
	var count int64
	require.NoError(t, s.DB.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateUserOnlineStatus(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "streamer")

	require.NoError(t, s.UpdateUserOnlineStatus(user.ID, true, "Elden Ring"))

	stored, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsOnline)
	assert.Equal(t, "Elden Ring", stored.CurrentGame)

	require.NoError(t, s.UpdateUserOnlineStatus(user.ID, false, ""))

	stored, err = s.GetUser(user.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsOnline)
	assert.Equal(t, "", stored.CurrentGame)
}

func TestTopUsersByXP(t *testing.T) {
	s := setupTestDB(t)
	for _, u := range []struct {
		name string
		xp   int
	}{
		{"bronze", 100},
		{"gold", 900},
		{"silver", 500},
	} {
		user := createTestUser(t, s, u.name)
		require.NoError(t, s.DB.Model(user).Update("xp_points", u.xp).Error)
	}

	users, err := s.TopUsersByXP(2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "gold", users[0].Username)
	assert.Equal(t, "silver", users[1].Username)
}

func TestUpdateUserProfile(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "editor")

	updated, err := s.UpdateUserProfile(user.ID, map[string]interface{}{
		"bio":             "Competitive FPS player",
		"twitch_username": "editor_ttv",
	})
	require.NoError(t, err)
	assert.Equal(t, "Competitive FPS player", updated.Bio)
	assert.Equal(t, "editor_ttv", updated.TwitchUsername)
}
