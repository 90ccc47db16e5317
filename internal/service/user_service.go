package service

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"qa-service/internal/auth"
	"qa-service/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// UserRepository is the slice of the store the user service needs.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id int) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type UserService struct {
	repo   UserRepository
	hasher auth.PasswordHasher
	tokens *auth.TokenService
}

func NewUserService(repo UserRepository, hasher auth.PasswordHasher, tokens *auth.TokenService) *UserService {
	return &UserService{repo: repo, hasher: hasher, tokens: tokens}
}

// Signup registers a new user with a hashed password. Duplicate email or
// username surfaces as ErrEmailTaken / ErrUsernameTaken from the store.
func (s *UserService) Signup(ctx context.Context, username, email, password string) (*entity.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	user, err := s.repo.Create(ctx, &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues an access token. The identifier
// is matched against the email column. Unknown user and wrong password
// both come back as ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", entity.ErrInvalidCredentials
		}
		logger.Error().Err(err).Msg("Error looking up user for login")
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", entity.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Error issuing token")
		return "", err
	}

	return token, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	return s.repo.GetByID(ctx, id)
}
