package storage

import (
	"testing"

	"github.com/gamer-hub/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestLikeUnlikeRestoresCounter(t *testing.T) {
	s := setupTestDB(t)
	author := createTestUser(t, s, "author")
	fan := createTestUser(t, s, "fan")
	post := createTestPost(t, s, author.ID, "gg wp")

	require.NoError(t, s.LikePost(post.ID, fan.ID))

	liked, err := s.IsPostLiked(post.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	stored, err := s.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.LikesCount)

	require.NoError(t, s.UnlikePost(post.ID, fan.ID))

	liked, err = s.IsPostLiked(post.ID, fan.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	stored, err = s.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.LikesCount)
}

func TestDoubleLikeAddsRows(t *testing.T) {
	s := setupTestDB(t)
	author := createTestUser(t, s, "author")
	fan := createTestUser(t, s, "fan")
	post := createTestPost(t, s, author.ID, "clutch round")

	// No uniqueness guard on likes; each call lands
	require.NoError(t, s.LikePost(post.ID, fan.ID))
	require.NoError(t, s.LikePost(post.ID, fan.ID))

	stored, err := s.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.LikesCount)
}

func TestCreateCommentBumpsCounter(t *testing.T) {
	s := setupTestDB(t)
	author := createTestUser(t, s, "author")
	commenter := createTestUser(t, s, "commenter")
	post := createTestPost(t, s, author.ID, "new PB today")

	comment := &models.PostComment{
		PostID:  post.ID,
		UserID:  commenter.ID,
		Content: "nice run",
	}
	require.NoError(t, s.CreateComment(comment))

	stored, err := s.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CommentsCount)

	comments, err := s.GetPostComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice run", comments[0].Content)
	assert.Equal(t, "commenter", comments[0].User.Username)
}

func TestDeletePostOwnershipCheck(t *testing.T) {
	s := setupTestDB(t)
	author := createTestUser(t, s, "author")
	other := createTestUser(t, s, "other")
	post := createTestPost(t, s, author.ID, "mine")

	deleted, err := s.DeletePost(post.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = s.DeletePost(post.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetPost(post.ID)
	assert.Error(t, err)
}

func TestCreatePostValidatesMetadata(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "organizer")

	// Tournament post without maxPlayers is rejected
	bad := &models.Post{
		UserID:   user.ID,
		Content:  "weekend cup",
		PostType: models.PostTypeTournament,
		Metadata: datatypes.JSON(`{"status":"upcoming"}`),
	}
	assert.Error(t, s.CreatePost(bad))

	good := &models.Post{
		UserID:   user.ID,
		Content:  "weekend cup",
		PostType: models.PostTypeTournament,
		Metadata: datatypes.JSON(`{"status":"upcoming","maxPlayers":16}`),
	}
	assert.NoError(t, s.CreatePost(good))
}

func TestGetPostsByType(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "streamer")

	createTestPost(t, s, user.ID, "plain text")
	clip := &models.Post{
		UserID:   user.ID,
		Content:  "ace clutch",
		PostType: models.PostTypeVideo,
	}
	require.NoError(t, s.CreatePost(clip))

	clips, err := s.GetPostsByType(models.PostTypeVideo)
	require.NoError(t, err)
	require.Len(t, clips, 1)
	assert.Equal(t, "ace clutch", clips[0].Content)
	assert.Equal(t, "streamer", clips[0].User.Username)
}

func TestGetPostsFromUserCommunities(t *testing.T) {
	s := setupTestDB(t)
	member := createTestUser(t, s, "member")
	outsider := createTestUser(t, s, "outsider")

	community := &models.Community{Name: "Speedrunners", AdminUserID: member.ID}
	require.NoError(t, s.CreateCommunity(community))
	other := &models.Community{Name: "Casuals", AdminUserID: outsider.ID}
	require.NoError(t, s.CreateCommunity(other))

	require.NoError(t, s.JoinCommunity(community.ID, member.ID))

	inside := &models.Post{
		UserID:      outsider.ID,
		CommunityID: &community.ID,
		Content:     "race tonight",
		PostType:    models.PostTypeText,
	}
	require.NoError(t, s.CreatePost(inside))
	elsewhere := &models.Post{
		UserID:      outsider.ID,
		CommunityID: &other.ID,
		Content:     "elsewhere",
		PostType:    models.PostTypeText,
	}
	require.NoError(t, s.CreatePost(elsewhere))

	posts, err := s.GetPostsFromUserCommunities(member.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "race tonight", posts[0].Content)
}
