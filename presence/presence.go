package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// HeartbeatTTL is how long a user stays online after their last ping.
const HeartbeatTTL = 90 * time.Second

// Tracker records online presence as TTL'd Redis keys. A user is online while
// their heartbeat key exists; missing a ping lets the key expire.
type Tracker struct {
	client *redis.Client
}

func NewTracker(client *redis.Client) *Tracker {
	return &Tracker{client: client}
}

// Enabled reports whether a presence store is configured.
func (t *Tracker) Enabled() bool {
	return t != nil && t.client != nil
}

func UserKey(userID string) string {
	return fmt.Sprintf("presence:user:%s", userID)
}

// Heartbeat refreshes the user's presence key. The stored value is the game
// they are currently playing ("" when just browsing).
func (t *Tracker) Heartbeat(ctx context.Context, userID, currentGame string) error {
	if !t.Enabled() {
		return nil
	}
	return t.client.Set(ctx, UserKey(userID), currentGame, HeartbeatTTL).Err()
}

// Clear drops the user's presence key immediately, e.g. on logout.
func (t *Tracker) Clear(ctx context.Context, userID string) error {
	if !t.Enabled() {
		return nil
	}
	return t.client.Del(ctx, UserKey(userID)).Err()
}

// IsOnline reports whether the user has a live heartbeat.
func (t *Tracker) IsOnline(ctx context.Context, userID string) (bool, error) {
	if !t.Enabled() {
		return false, nil
	}
	n, err := t.client.Exists(ctx, UserKey(userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CurrentGame returns the game stored with the heartbeat, or "" when the user
// is offline.
func (t *Tracker) CurrentGame(ctx context.Context, userID string) (string, error) {
	if !t.Enabled() {
		return "", nil
	}
	game, err := t.client.Get(ctx, UserKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return game, nil
}
