package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"qa-service/internal/api"
	"qa-service/internal/entity"
	"qa-service/internal/service"
)

const cookieName = "access_token"

type PageHandler struct {
	users     service.UserService
	questions service.QuestionService
	answers   service.AnswerService
	likes     service.LikeService

	cookieMaxAge  int
	secureCookies bool
}

func NewPageHandler(users service.UserService, questions service.QuestionService, answers service.AnswerService, likes service.LikeService, cookieMaxAge int, secureCookies bool) *PageHandler {
	return &PageHandler{
		users:         users,
		questions:     questions,
		answers:       answers,
		likes:         likes,
		cookieMaxAge:  cookieMaxAge,
		secureCookies: secureCookies,
	}
}

type pageData struct {
	Title     string
	User      *entity.User
	Questions []entity.Question
	Question  *entity.Question
	Answers   []entity.Answer
	FormError string
	Page      int
	NextPage  int
	PrevPage  int
}

// Home lists questions, ten per page --> GET /
func (h *PageHandler) Home(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	const perPage = 10
	questions, err := h.questions.ListQuestions(c.Request().Context(), (page-1)*perPage, perPage)
	if err != nil {
		return err
	}

	data := &pageData{
		Title:     "Questions",
		User:      api.CurrentUser(c),
		Questions: questions,
		Page:      page,
		PrevPage:  page - 1,
	}
	if len(questions) == perPage {
		data.NextPage = page + 1
	}
	return c.Render(http.StatusOK, "home.html", data)
}

// QuestionPage shows one question with its answers --> GET /q/:id
func (h *PageHandler) QuestionPage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	question, err := h.questions.GetQuestion(c.Request().Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	answers, err := h.answers.ListAnswers(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "question.html", &pageData{
		Title:    question.Title,
		User:     api.CurrentUser(c),
		Question: question,
		Answers:  answers,
	})
}

// SignupForm renders the signup page --> GET /signup
func (h *PageHandler) SignupForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", &pageData{Title: "Sign up"})
}

// Signup registers a user from form input --> POST /signup
func (h *PageHandler) Signup(c echo.Context) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")

	_, err := h.users.Signup(c.Request().Context(), username, email, password)
	if err != nil {
		formError := "could not create the account"
		if errors.Is(err, entity.ErrEmailTaken) || errors.Is(err, entity.ErrUsernameTaken) {
			formError = err.Error()
		}
		return c.Render(http.StatusOK, "signup.html", &pageData{Title: "Sign up", FormError: formError})
	}

	return c.Redirect(http.StatusFound, "/login")
}

// LoginForm renders the login page --> GET /login
func (h *PageHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", &pageData{Title: "Log in"})
}

// Login sets the session cookie on success --> POST /login
func (h *PageHandler) Login(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.users.Login(c.Request().Context(), email, password)
	if err != nil {
		return c.Render(http.StatusOK, "login.html", &pageData{Title: "Log in", FormError: "invalid credentials"})
	}

	h.setAuthCookie(c, token, h.cookieMaxAge)
	return c.Redirect(http.StatusFound, "/")
}

// Logout clears the session cookie --> POST /logout
func (h *PageHandler) Logout(c echo.Context) error {
	h.setAuthCookie(c, "", -1)
	return c.Redirect(http.StatusFound, "/")
}

// AskForm renders the new-question page --> GET /ask
func (h *PageHandler) AskForm(c echo.Context) error {
	return c.Render(http.StatusOK, "ask.html", &pageData{Title: "Ask a question", User: api.CurrentUser(c)})
}

// CreateQuestion posts a question from form input --> POST /q
func (h *PageHandler) CreateQuestion(c echo.Context) error {
	title := c.FormValue("title")
	content := c.FormValue("content")
	if title == "" || content == "" {
		return c.Render(http.StatusOK, "ask.html", &pageData{
			Title:     "Ask a question",
			User:      api.CurrentUser(c),
			FormError: "title and content are required",
		})
	}

	question, err := h.questions.CreateQuestion(c.Request().Context(), api.CurrentUser(c).ID, title, content)
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/q/"+strconv.Itoa(question.ID))
}

// DeleteQuestion removes an owned question --> POST /q/:id/delete
func (h *PageHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	err = h.questions.DeleteQuestion(c.Request().Context(), id, api.CurrentUser(c).ID)
	if errors.Is(err, entity.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden)
	}
	if errors.Is(err, entity.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

// CreateAnswer posts an answer from form input --> POST /q/:id/answers
func (h *PageHandler) CreateAnswer(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	content := c.FormValue("content")
	if content != "" {
		_, err = h.answers.CreateAnswer(c.Request().Context(), api.CurrentUser(c).ID, id, content)
		if errors.Is(err, entity.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		if err != nil {
			return err
		}
	}

	return c.Redirect(http.StatusFound, "/q/"+strconv.Itoa(id))
}

// Like records a like --> POST /q/:id/like
func (h *PageHandler) Like(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	err = h.likes.LikeQuestion(c.Request().Context(), api.CurrentUser(c).ID, id)
	switch {
	case errors.Is(err, entity.ErrAlreadyLiked):
		// double submit from the browser, nothing to do
	case errors.Is(err, entity.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound)
	case err != nil:
		return err
	}

	return c.Redirect(http.StatusFound, "/q/"+strconv.Itoa(id))
}

// Unlike removes a like --> POST /q/:id/unlike
func (h *PageHandler) Unlike(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	err = h.likes.UnlikeQuestion(c.Request().Context(), api.CurrentUser(c).ID, id)
	switch {
	case errors.Is(err, entity.ErrLikeNotFound):
		// nothing to remove, fall through to the redirect
	case errors.Is(err, entity.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound)
	case err != nil:
		return err
	}

	return c.Redirect(http.StatusFound, "/q/"+strconv.Itoa(id))
}

func (h *PageHandler) setAuthCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	})
}
