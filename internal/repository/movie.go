package repository

import (
	"context"

	"movie-api/internal/domain"
)

// MovieRepository exposes persistence operations for movie documents.
// Title lookups act on the first stored movie carrying that title.
type MovieRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, movie *domain.Movie) (string, error)
	List(ctx context.Context) ([]domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id string) error
}
