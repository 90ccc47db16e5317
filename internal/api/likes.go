package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"qa-service/internal/service"
)

type LikeHandler struct {
	likes service.LikeService
}

func NewLikeHandler(likes service.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// Like records a like on a question --> POST /questions/:id/like
func (h *LikeHandler) Like(c echo.Context) error {
	questionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	if err := h.likes.LikeQuestion(c.Request().Context(), CurrentUser(c).ID, questionID); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Liked"})
}

// Unlike removes a like from a question --> POST /questions/:id/unlike
func (h *LikeHandler) Unlike(c echo.Context) error {
	questionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	if err := h.likes.UnlikeQuestion(c.Request().Context(), CurrentUser(c).ID, questionID); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Unliked"})
}
