package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"movie-api/internal/domain"
	"movie-api/internal/repository"
)

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	release_date INTEGER NOT NULL CHECK (release_date BETWEEN 1900 AND 2100),
	genre TEXT NOT NULL,
	actors TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS movies_title_idx ON movies (title);
`

const selectMovie = `
SELECT id, title, release_date, genre, actors, created_at, updated_at
FROM movies`

// MovieRepository keeps each movie as one row; the actor list is stored as a
// JSON document column.
type MovieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) repository.MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createMoviesTable); err != nil {
		return fmt.Errorf("create movies table: %w", err)
	}
	return nil
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (string, error) {
	actors, err := encodeActors(movie.Actors)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	id := uuid.NewString()

	_, err = r.db.ExecContext(ctx, `
INSERT INTO movies (id, title, release_date, genre, actors, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		movie.Title,
		movie.ReleaseDate,
		string(movie.Genre),
		actors,
		now,
		now,
	)
	if err != nil {
		return "", fmt.Errorf("insert movie: %w", err)
	}

	movie.ID = id
	movie.CreatedAt = now
	movie.UpdatedAt = now
	return id, nil
}

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	rows, err := r.db.QueryContext(ctx, selectMovie+`
ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	movies := []domain.Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	row := r.db.QueryRowContext(ctx, selectMovie+`
WHERE title = ?
ORDER BY rowid ASC
LIMIT 1`,
		title,
	)
	return scanMovie(row)
}

func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	actors, err := encodeActors(movie.Actors)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
UPDATE movies
SET title = ?, release_date = ?, genre = ?, actors = ?, updated_at = ?
WHERE id = ?`,
		movie.Title,
		movie.ReleaseDate,
		string(movie.Genre),
		actors,
		now,
		movie.ID,
	)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	if err := expectAffected(res); err != nil {
		return err
	}
	movie.UpdatedAt = now
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return expectAffected(res)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("movie rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("movie: %w", repository.ErrNotFound)
	}
	return nil
}

func encodeActors(actors []domain.Actor) (string, error) {
	if actors == nil {
		actors = []domain.Actor{}
	}
	raw, err := json.Marshal(actors)
	if err != nil {
		return "", fmt.Errorf("encode actors: %w", err)
	}
	return string(raw), nil
}

func scanMovie(row rowScanner) (*domain.Movie, error) {
	var (
		movie  domain.Movie
		genre  string
		actors string
	)
	if err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.ReleaseDate,
		&genre,
		&actors,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("movie: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan movie: %w", err)
	}
	movie.Genre = domain.Genre(genre)
	if err := json.Unmarshal([]byte(actors), &movie.Actors); err != nil {
		return nil, fmt.Errorf("decode actors for movie %s: %w", movie.ID, err)
	}
	return &movie, nil
}
