package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/voidspace/posts-backend/internal/middleware"
	"github.com/voidspace/posts-backend/internal/models"
	"github.com/voidspace/posts-backend/internal/services"
	"github.com/voidspace/posts-backend/pkg/response"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.GetPosts)
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PATCH("/posts/:id", h.EditPost, middleware.GatewayAuth())
	g.DELETE("/posts/:id", h.DeletePost, middleware.GatewayAuth())
}

// GetPosts retrieves all posts, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postService.ListPosts()
	if err != nil {
		return writeDomainError(c, err)
	}
	return response.Success(c, http.StatusOK, "Posts retrieved successfully", posts)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.CreatePost(&req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return response.Success(c, http.StatusOK, "Post created successfully", post)
}

// GetPost retrieves a post by id
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postService.GetPost(c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return response.Success(c, http.StatusOK, "Post retrieved successfully", post)
}

// EditPost updates content and images of an existing post
func (h *PostHandler) EditPost(c echo.Context) error {
	username := c.Get(middleware.UsernameContextKey).(string)

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.EditPost(c.Param("id"), username, &req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return response.Success(c, http.StatusOK, "Post edited successfully", post)
}

// DeletePost deletes a post and cascades removal of its likes
func (h *PostHandler) DeletePost(c echo.Context) error {
	username := c.Get(middleware.UsernameContextKey).(string)

	if err := h.postService.DeletePost(c.Param("id"), username); err != nil {
		return writeDomainError(c, err)
	}
	return response.Success(c, http.StatusOK, "Post deleted successfully", nil)
}
