package services

import (
	"errors"

	"github.com/voidspace/posts-backend/internal/domain"
	"github.com/voidspace/posts-backend/internal/models"
	"github.com/voidspace/posts-backend/internal/repositories"
	"gorm.io/gorm"
)

// LikeService applies like business rules. It composes with PostService to
// validate the target post exists before touching the likes table.
type LikeService struct {
	repo        repositories.LikeRepository
	postService *PostService
}

// NewLikeService creates a new LikeService
func NewLikeService(repo repositories.LikeRepository, postService *PostService) *LikeService {
	return &LikeService{repo: repo, postService: postService}
}

// LikePost records that a user likes a post. Liking a missing post fails with
// domain.ErrPostNotFound; liking the same post twice fails with
// domain.ErrAlreadyLiked. The composite primary key on likes is what makes
// concurrent duplicate likes safe: exactly one insert wins.
func (s *LikeService) LikePost(postID, username string) error {
	post, err := s.postService.GetPost(postID)
	if err != nil {
		return err
	}
	if _, err := s.repo.CreateLike(post.ID, username); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyLiked
		}
		return domain.NewStoreError("failed to like post", err)
	}
	return nil
}

// UnlikePost removes a user's like. Unliking a never-liked pair fails with
// domain.ErrLikeNotFound.
func (s *LikeService) UnlikePost(postID, username string) error {
	like, err := s.repo.GetLike(postID, username)
	if err != nil {
		return domain.NewStoreError("failed to look up like", err)
	}
	if like == nil {
		return domain.ErrLikeNotFound
	}
	if err := s.repo.DeleteLike(like); err != nil {
		return domain.NewStoreError("failed to remove like", err)
	}
	return nil
}

// GetLikedPosts returns the posts a user has liked, newest like first
func (s *LikeService) GetLikedPosts(username string) ([]models.Post, error) {
	posts, err := s.repo.GetLikedPostsByUser(username)
	if err != nil {
		return nil, domain.NewStoreError("failed to retrieve liked posts", err)
	}
	return posts, nil
}
