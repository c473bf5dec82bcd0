package storage

import (
	"testing"

	"github.com/gamer-hub/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func createTournamentPost(t *testing.T, s *Storage, userID string) *models.Post {
	t.Helper()

	post := &models.Post{
		UserID:   userID,
		Content:  "weekend cup",
		PostType: models.PostTypeTournament,
		Metadata: datatypes.JSON(`{"status":"upcoming","maxPlayers":8}`),
	}
	require.NoError(t, s.CreatePost(post))
	return post
}

func TestJoinTournament(t *testing.T) {
	s := setupTestDB(t)
	organizer := createTestUser(t, s, "organizer")
	player := createTestUser(t, s, "player")
	tournament := createTournamentPost(t, s, organizer.ID)

	require.NoError(t, s.JoinTournament(tournament.ID, player.ID))

	joined, err := s.IsUserInTournament(tournament.ID, player.ID)
	require.NoError(t, err)
	assert.True(t, joined)

	count, err := s.GetTournamentParticipantCount(tournament.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestJoinTournamentTwiceFails(t *testing.T) {
	s := setupTestDB(t)
	organizer := createTestUser(t, s, "organizer")
	player := createTestUser(t, s, "player")
	tournament := createTournamentPost(t, s, organizer.ID)

	require.NoError(t, s.JoinTournament(tournament.ID, player.ID))

	// The composite unique index rejects the duplicate
	err := s.JoinTournament(tournament.ID, player.ID)
	assert.Error(t, err)

	count, err := s.GetTournamentParticipantCount(tournament.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLeaveTournament(t *testing.T) {
	s := setupTestDB(t)
	organizer := createTestUser(t, s, "organizer")
	player := createTestUser(t, s, "player")
	tournament := createTournamentPost(t, s, organizer.ID)

	require.NoError(t, s.JoinTournament(tournament.ID, player.ID))
	require.NoError(t, s.LeaveTournament(tournament.ID, player.ID))

	joined, err := s.IsUserInTournament(tournament.ID, player.ID)
	require.NoError(t, err)
	assert.False(t, joined)

	// Leaving frees the slot for a re-join
	assert.NoError(t, s.JoinTournament(tournament.ID, player.ID))
}
