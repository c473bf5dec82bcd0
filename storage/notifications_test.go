package storage

import (
	"testing"

	"github.com/gamer-hub/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreadNotificationCount(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "recipient")

	for i := 0; i < 3; i++ {
		require.NoError(t, s.CreateNotification(&models.Notification{
			UserID: user.ID,
			Type:   models.NotificationPostLike,
			Title:  "Someone liked your post",
		}))
	}

	count, err := s.GetUnreadNotificationCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	notifications, err := s.GetUserNotifications(user.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 3)

	require.NoError(t, s.MarkNotificationAsRead(notifications[0].ID))

	count, err = s.GetUnreadNotificationCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNotificationsScopedToUser(t *testing.T) {
	s := setupTestDB(t)
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	require.NoError(t, s.CreateNotification(&models.Notification{
		UserID: alice.ID,
		Type:   models.NotificationFriendRequest,
		Title:  "New friend request",
	}))

	notifications, err := s.GetUserNotifications(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
