package presence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserKey(t *testing.T) {
	assert.Equal(t, "presence:user:abc-123", UserKey("abc-123"))
}

func TestTrackerWithoutRedisIsNoop(t *testing.T) {
	tracker := NewTracker(nil)
	ctx := context.Background()

	assert.False(t, tracker.Enabled())
	assert.NoError(t, tracker.Heartbeat(ctx, "u1", "Quake"))
	assert.NoError(t, tracker.Clear(ctx, "u1"))

	online, err := tracker.IsOnline(ctx, "u1")
	assert.NoError(t, err)
	assert.False(t, online)

	game, err := tracker.CurrentGame(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "", game)
}
