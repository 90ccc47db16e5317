package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"qa-service/internal/entity"
)

// errorJSON maps domain errors onto HTTP responses. Anything outside the
// taxonomy is a 500 with a generic body.
func errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, entity.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound), errors.Is(err, entity.ErrLikeNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, entity.ErrEmailTaken),
		errors.Is(err, entity.ErrUsernameTaken),
		errors.Is(err, entity.ErrAlreadyLiked):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
