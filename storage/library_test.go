package storage

import (
	"testing"

	"github.com/gamer-hub/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryAddAndGet(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "collector")
	game := createTestGame(t, s, "Hollow Knight")

	entry := &models.UserGame{
		UserID:      user.ID,
		GameID:      game.ID,
		HoursPlayed: 42,
	}
	require.NoError(t, s.AddGameToLibrary(entry))

	entries, err := s.GetUserGames(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 42, entries[0].HoursPlayed)
	assert.Equal(t, "Hollow Knight", entries[0].Game.Name)
}

func TestUpdateLibraryEntry(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "collector")
	game := createTestGame(t, s, "Celeste")

	entry := &models.UserGame{UserID: user.ID, GameID: game.ID}
	require.NoError(t, s.AddGameToLibrary(entry))

	require.NoError(t, s.UpdateLibraryEntry(user.ID, game.ID, map[string]interface{}{
		"hours_played": 100,
		"is_favorite":  true,
	}))

	entries, err := s.GetUserGames(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 100, entries[0].HoursPlayed)
	assert.True(t, entries[0].IsFavorite)
}

func TestRemoveGameFromLibrary(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "collector")
	game := createTestGame(t, s, "Hades")

	entry := &models.UserGame{UserID: user.ID, GameID: game.ID}
	require.NoError(t, s.AddGameToLibrary(entry))

	require.NoError(t, s.RemoveGameFromLibrary(user.ID, game.ID))

	entries, err := s.GetUserGames(user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
