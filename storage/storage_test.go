package storage

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gamer-hub/api-go/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database per test and migrates the
// full schema. cache=shared keeps the database alive across pooled
// connections, which transactions need.
func setupTestDB(t *testing.T) *Storage {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Community{},
		&models.CommunityMember{},
		&models.Post{},
		&models.PostLike{},
		&models.PostComment{},
		&models.Friendship{},
		&models.UserGame{},
		&models.Notification{},
		&models.TournamentParticipant{},
		&models.RefreshToken{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return New(db)
}

func createTestUser(t *testing.T, s *Storage, username string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    username + "@example.com",
		Username: username,
	}
	require.NoError(t, s.CreateUser(user))
	return user
}

func createTestGame(t *testing.T, s *Storage, name string) *models.Game {
	t.Helper()

	game := &models.Game{Name: name, IsActive: true}
	require.NoError(t, s.CreateGame(game))
	return game
}

func createTestPost(t *testing.T, s *Storage, userID, content string) *models.Post {
	t.Helper()

	post := &models.Post{
		UserID:   userID,
		Content:  content,
		PostType: models.PostTypeText,
	}
	require.NoError(t, s.CreatePost(post))
	return post
}
