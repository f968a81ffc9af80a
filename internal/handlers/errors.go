package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/voidspace/posts-backend/internal/domain"
	"github.com/voidspace/posts-backend/pkg/response"
)

// writeDomainError maps domain errors to HTTP responses. Store failures get a
// generic body; the cause is logged server-side only.
func writeDomainError(c echo.Context, err error) error {
	var storeErr *domain.StoreError
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		return response.Error(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, domain.ErrLikeNotFound):
		return response.Error(c, http.StatusNotFound, "Like not found")
	case errors.Is(err, domain.ErrForbidden):
		return response.Error(c, http.StatusForbidden, "You can only modify your own posts")
	case errors.Is(err, domain.ErrAlreadyLiked):
		return response.Error(c, http.StatusConflict, "Post already liked by this user")
	case errors.As(err, &storeErr):
		log.Printf("store error: %v", storeErr)
		return response.Error(c, http.StatusInternalServerError, "Internal Server Error")
	default:
		// anything else is a defect; let Echo's error handler surface it
		return err
	}
}
