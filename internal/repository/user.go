package repository

import (
	"context"
	"errors"

	"movie-api/internal/domain"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write violates a unique index.
	ErrConflict = errors.New("unique constraint violated")
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	// Create assigns the user ID. Duplicate usernames fail with ErrConflict.
	Create(ctx context.Context, user *domain.User) (string, error)
	// GetByUsername is the only read path that returns the password hash.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
