package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"qa-service/internal/service"
)

type UserHandler struct {
	users     service.UserService
	questions service.QuestionService
	answers   service.AnswerService
}

func NewUserHandler(users service.UserService, questions service.QuestionService, answers service.AnswerService) *UserHandler {
	return &UserHandler{users: users, questions: questions, answers: answers}
}

// Signup registers a new user --> POST /users/signup
func (h *UserHandler) Signup(c echo.Context) error {
	req := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "username, email and password are required"})
	}

	user, err := h.users.Signup(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, user)
}

// Login exchanges form credentials for an access token --> POST /users/login
func (h *UserHandler) Login(c echo.Context) error {
	// the username form field carries the email address
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "username and password are required"})
	}

	token, err := h.users.Login(c.Request().Context(), email, password)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me returns the authenticated user --> GET /users/me
func (h *UserHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, CurrentUser(c))
}

// MyQuestions lists the authenticated user's questions --> GET /users/me/questions
func (h *UserHandler) MyQuestions(c echo.Context) error {
	questions, err := h.questions.ListQuestionsByUser(c.Request().Context(), CurrentUser(c).ID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, questions)
}

// MyAnswers lists the authenticated user's answers --> GET /users/me/answers
func (h *UserHandler) MyAnswers(c echo.Context) error {
	answers, err := h.answers.ListAnswersByUser(c.Request().Context(), CurrentUser(c).ID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, answers)
}
