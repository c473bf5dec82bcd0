package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllGamesActiveOnly(t *testing.T) {
	s := setupTestDB(t)
	createTestGame(t, s, "Apex Tactics")
	retired := createTestGame(t, s, "Old Shooter")
	require.NoError(t, s.DB.Model(retired).Update("is_active", false).Error)

	games, err := s.GetAllGames()
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Apex Tactics", games[0].Name)
}

func TestSearchGamesCaseInsensitive(t *testing.T) {
	s := setupTestDB(t)
	createTestGame(t, s, "Rocket League")
	createTestGame(t, s, "Stardew Valley")
	hidden := createTestGame(t, s, "Rocket Racing")
	require.NoError(t, s.DB.Model(hidden).Update("is_active", false).Error)

	// Case-insensitive substring match, active games only
	games, err := s.SearchGames("ROCKET")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Rocket League", games[0].Name)

	games, err = s.SearchGames("valley")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Stardew Valley", games[0].Name)
}

func TestSearchGamesNoMatches(t *testing.T) {
	s := setupTestDB(t)
	createTestGame(t, s, "Rocket League")

	games, err := s.SearchGames("chess")
	require.NoError(t, err)
	assert.Empty(t, games)
}
