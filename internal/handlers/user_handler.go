package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/voidspace/posts-backend/internal/services"
	"github.com/voidspace/posts-backend/pkg/response"
)

// UserHandler handles HTTP requests for per-user post listings
type UserHandler struct {
	postService *services.PostService
	likeService *services.LikeService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(postService *services.PostService, likeService *services.LikeService) *UserHandler {
	return &UserHandler{postService: postService, likeService: likeService}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/:username/posts", h.GetUserPosts)
	g.GET("/users/:username/liked", h.GetLikedPosts)
}

// GetUserPosts retrieves the posts authored by a user, newest first. A user
// with no posts is an empty list, not an error.
func (h *UserHandler) GetUserPosts(c echo.Context) error {
	posts, err := h.postService.ListUserPosts(c.Param("username"))
	if err != nil {
		return writeDomainError(c, err)
	}

	message := "Posts retrieved successfully"
	if len(posts) == 0 {
		message = "User hasn't posted anything yet"
	}
	return response.Success(c, http.StatusOK, message, posts)
}

// GetLikedPosts retrieves the posts a user has liked, newest like first
func (h *UserHandler) GetLikedPosts(c echo.Context) error {
	posts, err := h.likeService.GetLikedPosts(c.Param("username"))
	if err != nil {
		return writeDomainError(c, err)
	}

	message := "Liked posts retrieved successfully"
	if len(posts) == 0 {
		message = "You haven't liked any post"
	}
	return response.Success(c, http.StatusOK, message, posts)
}
