package storage

import (
	"testing"

	"github.com/gamer-hub/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinLeaveCommunityAdjustsMemberCount(t *testing.T) {
	s := setupTestDB(t)
	admin := createTestUser(t, s, "admin")
	member := createTestUser(t, s, "member")

	community := &models.Community{Name: "FPS Legends", AdminUserID: admin.ID}
	require.NoError(t, s.CreateCommunity(community))

	require.NoError(t, s.JoinCommunity(community.ID, member.ID))

	isMember, err := s.IsCommunityMember(community.ID, member.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	stored, err := s.GetCommunity(community.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.MemberCount)

	require.NoError(t, s.LeaveCommunity(community.ID, member.ID))

	isMember, err = s.IsCommunityMember(community.ID, member.ID)
	require.NoError(t, err)
	assert.False(t, isMember)

	stored, err = s.GetCommunity(community.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.MemberCount)
}

func TestDoubleJoinAddsRows(t *testing.T) {
	s := setupTestDB(t)
	admin := createTestUser(t, s, "admin")
	member := createTestUser(t, s, "member")

	community := &models.Community{Name: "MOBA Masters", AdminUserID: admin.ID}
	require.NoError(t, s.CreateCommunity(community))

	// No duplicate-membership guard; the counter inflates
	require.NoError(t, s.JoinCommunity(community.ID, member.ID))
	require.NoError(t, s.JoinCommunity(community.ID, member.ID))

	stored, err := s.GetCommunity(community.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.MemberCount)
}

func TestGetUserCommunities(t *testing.T) {
	s := setupTestDB(t)
	admin := createTestUser(t, s, "admin")
	member := createTestUser(t, s, "member")

	joined := &models.Community{Name: "Retro Arcade", AdminUserID: admin.ID}
	require.NoError(t, s.CreateCommunity(joined))
	skipped := &models.Community{Name: "Sim Racers", AdminUserID: admin.ID}
	require.NoError(t, s.CreateCommunity(skipped))

	require.NoError(t, s.JoinCommunity(joined.ID, member.ID))

	communities, err := s.GetUserCommunities(member.ID)
	require.NoError(t, err)
	require.Len(t, communities, 1)
	assert.Equal(t, "Retro Arcade", communities[0].Name)
}

func TestGetCommunitiesByGame(t *testing.T) {
	s := setupTestDB(t)
	admin := createTestUser(t, s, "admin")
	game := createTestGame(t, s, "Starfall")

	withGame := &models.Community{Name: "Starfall Squads", AdminUserID: admin.ID, GameID: &game.ID}
	require.NoError(t, s.CreateCommunity(withGame))
	without := &models.Community{Name: "General Chat", AdminUserID: admin.ID}
	require.NoError(t, s.CreateCommunity(without))

	communities, err := s.GetCommunitiesByGame(game.ID)
	require.NoError(t, err)
	require.Len(t, communities, 1)
	assert.Equal(t, "Starfall Squads", communities[0].Name)
}
