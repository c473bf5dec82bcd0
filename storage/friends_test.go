package storage

import (
	"testing"

	"github.com/gamer-hub/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendshipLifecycle(t *testing.T) {
	s := setupTestDB(t)
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	friendship, err := s.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipPending, friendship.Status)

	// Pending requests are not friendships yet
	friends, err := s.GetFriends(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	require.NoError(t, s.AcceptFriendRequest(friendship.ID))

	stored, err := s.GetFriendship(friendship.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipAccepted, stored.Status)
}

func TestGetFriendsIsSymmetric(t *testing.T) {
	s := setupTestDB(t)
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	friendship, err := s.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, s.AcceptFriendRequest(friendship.ID))

	// Both sides see each other regardless of who sent the request
	aliceFriends, err := s.GetFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID, aliceFriends[0].ID)

	bobFriends, err := s.GetFriends(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, alice.ID, bobFriends[0].ID)
}

func TestRejectFriendRequestDeletesRow(t *testing.T) {
	s := setupTestDB(t)
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	friendship, err := s.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, s.RejectFriendRequest(friendship.ID))

	// No rejected state is kept; the pair can start over
	_, err = s.GetFriendship(friendship.ID)
	assert.Error(t, err)

	status, err := s.GetFriendshipStatus(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "", status)

	_, err = s.SendFriendRequest(alice.ID, bob.ID)
	assert.NoError(t, err)
}

func TestGetFriendRequestsIncomingOnly(t *testing.T) {
	s := setupTestDB(t)
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")
	carol := createTestUser(t, s, "carol")

	_, err := s.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = s.SendFriendRequest(bob.ID, carol.ID)
	require.NoError(t, err)

	requests, err := s.GetFriendRequests(bob.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, alice.ID, requests[0].RequesterID)
	assert.Equal(t, "alice", requests[0].Requester.Username)
}

func TestGetFriendshipStatusEitherDirection(t *testing.T) {
	s := setupTestDB(t)
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	_, err := s.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	status, err := s.GetFriendshipStatus(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipPending, status)

	status, err = s.GetFriendshipStatus(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipPending, status)
}

func TestGetOnlineFriends(t *testing.T) {
	s := setupTestDB(t)
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")
	carol := createTestUser(t, s, "carol")

	for _, friendID := range []string{bob.ID, carol.ID} {
		friendship, err := s.SendFriendRequest(alice.ID, friendID)
		require.NoError(t, err)
		require.NoError(t, s.AcceptFriendRequest(friendship.ID))
	}

	require.NoError(t, s.UpdateUserOnlineStatus(bob.ID, true, "Rocket League"))

	online, err := s.GetOnlineFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, online, 1)
	assert.Equal(t, bob.ID, online[0].ID)
	assert.Equal(t, "Rocket League", online[0].CurrentGame)
}
