package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLikeRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	post, err := postRepo.CreatePost("hello", "alice", nil)
	require.NoError(t, err)

	like, err := likeRepo.CreateLike(post.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, post.ID, like.PostID)
	assert.Equal(t, "bob", like.Username)
	assert.False(t, like.CreatedAt.IsZero())

	got, err := likeRepo.GetLike(post.ID, "bob")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, post.ID, got.PostID)
}

func TestLikeRepository_GetLike_Absent(t *testing.T) {
	db := setupTestDB(t)
	likeRepo := NewPostgresLikeRepository(db)

	got, err := likeRepo.GetLike("no-such-post", "bob")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLikeRepository_DuplicateLike(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	post, err := postRepo.CreatePost("hello", "alice", nil)
	require.NoError(t, err)

	_, err = likeRepo.CreateLike(post.ID, "bob")
	require.NoError(t, err)

	_, err = likeRepo.CreateLike(post.ID, "bob")
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// only one row survives
	got, err := postRepo.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.LikeCount)
}

func TestLikeRepository_DeleteLike(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	post, err := postRepo.CreatePost("hello", "alice", nil)
	require.NoError(t, err)
	like, err := likeRepo.CreateLike(post.ID, "bob")
	require.NoError(t, err)

	require.NoError(t, likeRepo.DeleteLike(like))

	got, err := likeRepo.GetLike(post.ID, "bob")
	require.NoError(t, err)
	assert.Nil(t, got)

	refreshed, err := postRepo.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, refreshed.LikeCount)
}

func TestLikeRepository_LikeCountTracksRows(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	post, err := postRepo.CreatePost("hello", "alice", nil)
	require.NoError(t, err)

	users := []string{"bob", "carol", "dave"}
	for i, u := range users {
		_, err := likeRepo.CreateLike(post.ID, u)
		require.NoError(t, err)

		got, err := postRepo.GetPostByID(post.ID)
		require.NoError(t, err)
		assert.EqualValues(t, i+1, got.LikeCount)
	}

	for i, u := range users {
		like, err := likeRepo.GetLike(post.ID, u)
		require.NoError(t, err)
		require.NoError(t, likeRepo.DeleteLike(like))

		got, err := postRepo.GetPostByID(post.ID)
		require.NoError(t, err)
		assert.EqualValues(t, len(users)-i-1, got.LikeCount)
	}
}

func TestLikeRepository_GetLikedPostsByUser(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	first, err := postRepo.CreatePost("first", "alice", nil)
	require.NoError(t, err)
	second, err := postRepo.CreatePost("second", "carol", nil)
	require.NoError(t, err)
	unliked, err := postRepo.CreatePost("ignored", "dave", nil)
	require.NoError(t, err)

	_, err = likeRepo.CreateLike(first.ID, "bob")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = likeRepo.CreateLike(second.ID, "bob")
	require.NoError(t, err)
	_, err = likeRepo.CreateLike(unliked.ID, "carol")
	require.NoError(t, err)

	posts, err := likeRepo.GetLikedPostsByUser("bob")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	// newest like first
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	assert.EqualValues(t, 1, posts[0].LikeCount)

	none, err := likeRepo.GetLikedPostsByUser("nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
