package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-api/internal/domain"
	"movie-api/internal/repository"
)

// MovieService coordinates movie level operations backed by the repository.
type MovieService interface {
	CreateMovie(ctx context.Context, movie domain.Movie) (*domain.Movie, error)
	ListMovies(ctx context.Context) ([]domain.Movie, error)
	GetMovie(ctx context.Context, title string) (*domain.Movie, error)
	UpdateMovie(ctx context.Context, title string, patch domain.MoviePatch) (*domain.Movie, error)
	DeleteMovie(ctx context.Context, title string) error
}

type movieService struct {
	movies repository.MovieRepository
}

func NewMovieService(movies repository.MovieRepository) MovieService {
	return &movieService{movies: movies}
}

func (s *movieService) CreateMovie(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	if err := checkMovie(&movie); err != nil {
		return nil, err
	}

	if _, err := s.movies.Create(ctx, &movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}
	return &movie, nil
}

func (s *movieService) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	movies, err := s.movies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) GetMovie(ctx context.Context, title string) (*domain.Movie, error) {
	movie, err := s.movies.GetByTitle(ctx, title)
	if err != nil {
		return nil, mapMovieErr(err)
	}
	return movie, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, title string, patch domain.MoviePatch) (*domain.Movie, error) {
	movie, err := s.movies.GetByTitle(ctx, title)
	if err != nil {
		return nil, mapMovieErr(err)
	}
	if patch.Empty() {
		return movie, nil
	}

	patch.Apply(movie)
	if err := checkMovie(movie); err != nil {
		return nil, err
	}
	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, mapMovieErr(err)
	}
	return movie, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, title string) error {
	movie, err := s.movies.GetByTitle(ctx, title)
	if err != nil {
		return mapMovieErr(err)
	}
	if err := s.movies.Delete(ctx, movie.ID); err != nil {
		return mapMovieErr(err)
	}
	return nil
}

var errNoActors = errors.New("at least one actor is required")

// checkMovie normalizes the title and enforces the rules shared by create and
// update.
func checkMovie(movie *domain.Movie) error {
	movie.Title = strings.TrimSpace(movie.Title)
	if len(movie.Actors) == 0 {
		return invalid(errNoActors)
	}
	if err := movie.Validate(); err != nil {
		return invalid(err)
	}
	return nil
}

func mapMovieErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMovieNotFound
	}
	return fmt.Errorf("movie store: %w", err)
}
