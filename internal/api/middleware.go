package api

import (
	"context"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"qa-service/internal/auth"
	"qa-service/internal/entity"
)

// UserContextKey is where the resolver stores the authenticated user.
const UserContextKey = "current_user"

type UserLoader interface {
	GetUserByID(ctx context.Context, id int) (*entity.User, error)
}

// SessionResolver turns a request's auth carrier into an authenticated
// user. API endpoints carry the token in the Authorization header, page
// endpoints in the access_token cookie; both carriers feed the same
// verification and user-lookup path.
type SessionResolver struct {
	tokens *auth.TokenService
	users  UserLoader
}

func NewSessionResolver(tokens *auth.TokenService, users UserLoader) *SessionResolver {
	return &SessionResolver{tokens: tokens, users: users}
}

// Bearer authenticates requests via "Authorization: Bearer <token>" and
// answers 401 on any failure.
func (r *SessionResolver) Bearer() echo.MiddlewareFunc {
	return r.middleware("header:Authorization:Bearer ", false, func(c echo.Context) error {
		// one generic message for every authentication failure
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "could not validate credentials"})
	})
}

// Cookie authenticates requests via the access_token cookie and
// redirects to the login page on any failure.
func (r *SessionResolver) Cookie(loginURL string) echo.MiddlewareFunc {
	return r.middleware("cookie:access_token", false, func(c echo.Context) error {
		return c.Redirect(http.StatusFound, loginURL)
	})
}

// CookieOptional resolves the cookie user when present but lets
// anonymous requests through.
func (r *SessionResolver) CookieOptional() echo.MiddlewareFunc {
	return r.middleware("cookie:access_token", true, nil)
}

func (r *SessionResolver) middleware(lookup string, optional bool, reject func(echo.Context) error) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  UserContextKey,
		TokenLookup: lookup,
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			userID, err := r.tokens.Verify(raw)
			if err != nil {
				return nil, err
			}
			user, err := r.users.GetUserByID(c.Request().Context(), userID)
			if err != nil {
				return nil, err
			}
			return user, nil
		},
		ContinueOnIgnoredError: optional,
		ErrorHandler: func(c echo.Context, err error) error {
			if optional {
				return nil
			}
			return reject(c)
		},
	})
}

// CurrentUser returns the user stored by the resolver, or nil for an
// anonymous request.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(UserContextKey).(*entity.User)
	return user
}

// RequestTimeout bounds every request's context so store calls cannot
// hang past the deadline.
func RequestTimeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
