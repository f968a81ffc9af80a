package services

import (
	"github.com/voidspace/posts-backend/internal/domain"
	"github.com/voidspace/posts-backend/internal/models"
	"github.com/voidspace/posts-backend/internal/repositories"
)

// PostService applies post business rules on top of the repository. It is the
// translation boundary: every repository failure is re-raised as a
// domain.StoreError carrying the failed operation's context.
type PostService struct {
	repo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(repo repositories.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// ListPosts returns all posts, newest first
func (s *PostService) ListPosts() ([]models.Post, error) {
	posts, err := s.repo.GetAllPosts()
	if err != nil {
		return nil, domain.NewStoreError("failed to retrieve posts", err)
	}
	return posts, nil
}

// CreatePost persists a new post and returns it
func (s *PostService) CreatePost(req *models.CreatePostRequest) (*models.Post, error) {
	post, err := s.repo.CreatePost(req.Content, req.Author, req.Images)
	if err != nil {
		return nil, domain.NewStoreError("failed to create post", err)
	}
	return post, nil
}

// GetPost returns the post with the given id, or domain.ErrPostNotFound
func (s *PostService) GetPost(id string) (*models.Post, error) {
	post, err := s.repo.GetPostByID(id)
	if err != nil {
		return nil, domain.NewStoreError("failed to retrieve post", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

// EditPost updates content and images of a post. Only the author may edit.
func (s *PostService) EditPost(id, actor string, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}
	if post.Author != actor {
		return nil, domain.ErrForbidden
	}
	updated, err := s.repo.UpdatePost(post, req.Content, req.Images)
	if err != nil {
		return nil, domain.NewStoreError("failed to edit post", err)
	}
	return updated, nil
}

// DeletePost removes a post and, by cascade, its likes. Only the author may
// delete.
func (s *PostService) DeletePost(id, actor string) error {
	post, err := s.GetPost(id)
	if err != nil {
		return err
	}
	if post.Author != actor {
		return domain.ErrForbidden
	}
	if err := s.repo.DeletePost(post); err != nil {
		return domain.NewStoreError("failed to delete post", err)
	}
	return nil
}

// ListUserPosts returns the posts authored by a given user, newest first
func (s *PostService) ListUserPosts(username string) ([]models.Post, error) {
	posts, err := s.repo.GetPostsByAuthor(username)
	if err != nil {
		return nil, domain.NewStoreError("failed to retrieve user posts", err)
	}
	return posts, nil
}
