package models

import "errors"

// Domain errors surfaced to callers as 4xx responses. Controllers match
// them with errors.Is; anything else is a server error.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyFavorited   = errors.New("already in favorites")
	ErrFavoriteNotFound   = errors.New("favorite not found")
)
