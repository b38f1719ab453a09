package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"movie-api/internal/domain"
	"movie-api/internal/repository"
)

type fakeUsers struct {
	mu     sync.Mutex
	byID   map[string]*domain.User
	nextID int
	err    error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*domain.User{}}
}

func (f *fakeUsers) Init(context.Context) error { return nil }

func (f *fakeUsers) Create(_ context.Context, user *domain.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	for _, u := range f.byID {
		if u.Username == user.Username {
			return "", fmt.Errorf("user %q: %w", user.Username, repository.ErrConflict)
		}
	}
	f.nextID++
	user.ID = fmt.Sprintf("u%d", f.nextID)
	stored := *user
	f.byID[user.ID] = &stored
	return user.ID, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
	}
	cp := *u
	cp.PasswordHash = ""
	return &cp, nil
}

// plainHasher prefixes the password so tests can tell hashed from plaintext.
type plainHasher struct {
	err error
}

func (h plainHasher) Hash(_ context.Context, password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func (h plainHasher) Verify(_ context.Context, password, hash string) bool {
	return hash == "hashed:"+password
}

// countingHasher records how many verifications ran.
type countingHasher struct {
	plainHasher
	mu       sync.Mutex
	verifies int
}

func (h *countingHasher) Verify(ctx context.Context, password, hash string) bool {
	h.mu.Lock()
	h.verifies++
	h.mu.Unlock()
	return h.plainHasher.Verify(ctx, password, hash)
}

func (h *countingHasher) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.verifies
}

type fakeTokens struct {
	err error
}

func (f fakeTokens) Issue(id, username string) (string, time.Time, error) {
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	return "token-" + id + "-" + username, time.Unix(1700000000, 0), nil
}

type fakeMovies struct {
	mu     sync.Mutex
	movies []domain.Movie
	nextID int
	err    error
}

func (f *fakeMovies) Init(context.Context) error { return nil }

func (f *fakeMovies) Create(_ context.Context, movie *domain.Movie) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.nextID++
	movie.ID = fmt.Sprintf("m%d", f.nextID)
	f.movies = append(f.movies, *movie)
	return movie.ID, nil
}

func (f *fakeMovies) List(context.Context) ([]domain.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Movie{}, f.movies...), nil
}

func (f *fakeMovies) GetByTitle(_ context.Context, title string) (*domain.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.movies {
		if m.Title == title {
			cp := m
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("movie: %w", repository.ErrNotFound)
}

func (f *fakeMovies) Update(_ context.Context, movie *domain.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.movies {
		if f.movies[i].ID == movie.ID {
			f.movies[i] = *movie
			return nil
		}
	}
	return fmt.Errorf("movie: %w", repository.ErrNotFound)
}

func (f *fakeMovies) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.movies {
		if f.movies[i].ID == id {
			f.movies = append(f.movies[:i], f.movies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("movie: %w", repository.ErrNotFound)
}
