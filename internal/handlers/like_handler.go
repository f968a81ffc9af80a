package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/voidspace/posts-backend/internal/middleware"
	"github.com/voidspace/posts-backend/internal/services"
	"github.com/voidspace/posts-backend/pkg/response"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.LikePost, middleware.GatewayAuth())
	g.DELETE("/posts/:id/like", h.UnlikePost, middleware.GatewayAuth())
}

// LikePost records a like on a post for the calling user
func (h *LikeHandler) LikePost(c echo.Context) error {
	username := c.Get(middleware.UsernameContextKey).(string)

	if err := h.likeService.LikePost(c.Param("id"), username); err != nil {
		return writeDomainError(c, err)
	}
	return response.Success(c, http.StatusOK, "Successfully liked post", nil)
}

// UnlikePost removes the calling user's like from a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	username := c.Get(middleware.UsernameContextKey).(string)

	if err := h.likeService.UnlikePost(c.Param("id"), username); err != nil {
		return writeDomainError(c, err)
	}
	return response.Success(c, http.StatusOK, "Successfully unliked post", nil)
}
