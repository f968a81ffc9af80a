package repositories

import (
	"errors"

	"github.com/voidspace/posts-backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(postID, username string) (*models.Like, error)
	GetLike(postID, username string) (*models.Like, error)
	DeleteLike(like *models.Like) error
	GetLikedPostsByUser(username string) ([]models.Post, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts a like row. A duplicate (post, user) pair propagates the
// store's duplicate-key error untranslated.
func (r *PostgresLikeRepository) CreateLike(postID, username string) (*models.Like, error) {
	like := &models.Like{
		PostID:   postID,
		Username: username,
	}
	if err := r.db.Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

// GetLike retrieves a like by post and user. A missing like is an absent
// result (nil, nil), not an error.
func (r *PostgresLikeRepository) GetLike(postID, username string) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("post_id = ? AND username = ?", postID, username).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// DeleteLike removes an already-fetched like row
func (r *PostgresLikeRepository) DeleteLike(like *models.Like) error {
	return r.db.Delete(like).Error
}

// GetLikedPostsByUser retrieves the posts a user has liked, newest like first
func (r *PostgresLikeRepository) GetLikedPostsByUser(username string) ([]models.Post, error) {
	posts := []models.Post{}
	err := r.db.Model(&models.Post{}).
		Select(likeCountSelect).
		Joins("JOIN likes ON likes.post_id = posts.id").
		Where("likes.username = ?", username).
		Order("likes.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
