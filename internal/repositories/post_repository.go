package repositories

import (
	"errors"

	"github.com/google/uuid"
	"github.com/voidspace/posts-backend/internal/models"
	"gorm.io/gorm"
)

// likeCountSelect attaches the derived like_count to every post read. The
// count is never stored on the posts table, so it cannot drift.
const likeCountSelect = "posts.*, (SELECT count(*) FROM likes WHERE likes.post_id = posts.id) AS like_count"

// PostRepository defines the interface for post data operations
type PostRepository interface {
	GetAllPosts() ([]models.Post, error)
	CreatePost(content, author string, images []string) (*models.Post, error)
	GetPostByID(id string) (*models.Post, error)
	UpdatePost(post *models.Post, content string, images []string) (*models.Post, error)
	DeletePost(post *models.Post) error
	GetPostsByAuthor(author string) ([]models.Post, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// GetAllPosts retrieves all posts ordered newest first
func (r *PostgresPostRepository) GetAllPosts() ([]models.Post, error) {
	posts := []models.Post{}
	err := r.db.Model(&models.Post{}).
		Select(likeCountSelect).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost persists a new post with a freshly generated id
func (r *PostgresPostRepository) CreatePost(content, author string, images []string) (*models.Post, error) {
	post := &models.Post{
		ID:      uuid.NewString(),
		Content: content,
		Author:  author,
		Images:  models.ImageList(images),
	}
	if err := r.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// GetPostByID retrieves a post by id. A missing post is an absent result
// (nil, nil), not an error.
func (r *PostgresPostRepository) GetPostByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.Model(&models.Post{}).
		Select(likeCountSelect).
		Where("posts.id = ?", id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// UpdatePost mutates content and images of an already-fetched post and
// refreshes updated_at
func (r *PostgresPostRepository) UpdatePost(post *models.Post, content string, images []string) (*models.Post, error) {
	post.Content = content
	post.Images = models.ImageList(images)
	if err := r.db.Model(post).Select("content", "images", "updated_at").Updates(models.Post{
		Content: post.Content,
		Images:  post.Images,
	}).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and its likes in one transaction
func (r *PostgresPostRepository) DeletePost(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}

// GetPostsByAuthor retrieves posts authored by a given user, newest first
func (r *PostgresPostRepository) GetPostsByAuthor(author string) ([]models.Post, error) {
	posts := []models.Post{}
	err := r.db.Model(&models.Post{}).
		Select(likeCountSelect).
		Where("author = ?", author).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
