package entity

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("not the owner of this resource")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrAlreadyLiked       = errors.New("already liked")
	ErrLikeNotFound       = errors.New("like not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
