package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"qa-service/internal/service"
)

type AnswerHandler struct {
	answers service.AnswerService
}

func NewAnswerHandler(answers service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answers: answers}
}

type answerRequest struct {
	Content string `json:"content"`
}

// Create posts an answer to a question --> POST /questions/:id/answers
func (h *AnswerHandler) Create(c echo.Context) error {
	questionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	req := answerRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content is required"})
	}

	answer, err := h.answers.CreateAnswer(c.Request().Context(), CurrentUser(c).ID, questionID, req.Content)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, answer)
}

// List returns a question's answers --> GET /questions/:id/answers
func (h *AnswerHandler) List(c echo.Context) error {
	questionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	answers, err := h.answers.ListAnswers(c.Request().Context(), questionID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, answers)
}

// Update modifies an owned answer --> PUT /questions/:id/answers/:answerID
func (h *AnswerHandler) Update(c echo.Context) error {
	answerID, err := strconv.Atoi(c.Param("answerID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	req := answerRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content is required"})
	}

	answer, err := h.answers.UpdateAnswer(c.Request().Context(), answerID, CurrentUser(c).ID, req.Content)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, answer)
}

// Delete removes an owned answer --> DELETE /questions/:id/answers/:answerID
func (h *AnswerHandler) Delete(c echo.Context) error {
	answerID, err := strconv.Atoi(c.Param("answerID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	if err := h.answers.DeleteAnswer(c.Request().Context(), answerID, CurrentUser(c).ID); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Answer deleted"})
}
