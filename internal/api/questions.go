package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"qa-service/internal/service"
)

type QuestionHandler struct {
	questions service.QuestionService
}

func NewQuestionHandler(questions service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

type questionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create posts a new question --> POST /questions/
func (h *QuestionHandler) Create(c echo.Context) error {
	req := questionRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.Title == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title and content are required"})
	}

	question, err := h.questions.CreateQuestion(c.Request().Context(), CurrentUser(c).ID, req.Title, req.Content)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, question)
}

// List returns a page of questions, newest first --> GET /questions/?skip&limit
func (h *QuestionHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	questions, err := h.questions.ListQuestions(c.Request().Context(), skip, limit)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, questions)
}

// Get returns one question with its live like count --> GET /questions/:id
func (h *QuestionHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	question, err := h.questions.GetQuestion(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, question)
}

// Update modifies an owned question --> PUT /questions/:id
func (h *QuestionHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	req := questionRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.Title == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title and content are required"})
	}

	question, err := h.questions.UpdateQuestion(c.Request().Context(), id, CurrentUser(c).ID, req.Title, req.Content)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, question)
}

// Delete removes an owned question and its dependents --> DELETE /questions/:id
func (h *QuestionHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	if err := h.questions.DeleteQuestion(c.Request().Context(), id, CurrentUser(c).ID); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Question deleted"})
}
