package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"movie-api/internal/domain"
	"movie-api/internal/repository"
)

// PasswordHasher is satisfied by *auth.Hasher.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) bool
}

// TokenIssuer is satisfied by *auth.Tokens.
type TokenIssuer interface {
	Issue(id, username string) (string, time.Time, error)
}

// SignupInput carries the registration form.
type SignupInput struct {
	Name     string
	Username string
	Password string
}

// Session is the result of a successful sign in.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, in SignupInput) (*domain.User, error)
	SignIn(ctx context.Context, username, password string) (*Session, error)
	// Identify resolves the user behind a verified token claim.
	Identify(ctx context.Context, id string) (*domain.User, error)
}

type userService struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer

	decoyOnce sync.Once
	decoy     string
}

func NewUserService(users repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer) UserService {
	return &userService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

var (
	errMissingCredentials = errors.New("username and password are required")
	errPasswordTooLong    = fmt.Errorf("password must be at most %d bytes", maxPasswordBytes)
)

func (s *userService) Register(ctx context.Context, in SignupInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, invalid(errMissingCredentials)
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, invalid(errPasswordTooLong)
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Username:     username,
		PasswordHash: hash,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return sanitizeUser(user), nil
}

func (s *userService) SignIn(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, invalid(errMissingCredentials)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// burn the same bcrypt work as a real mismatch
			s.hasher.Verify(ctx, password, s.decoyHash(ctx))
			return nil, fmt.Errorf("%w: unknown username", ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(ctx, password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: password mismatch", ErrInvalidCredentials)
	}

	token, exp, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		ExpiresAt: exp,
		User:      sanitizeUser(user),
	}, nil
}

func (s *userService) Identify(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s no longer exists", ErrUnauthenticated, id)
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return sanitizeUser(user), nil
}

// decoyHash returns a hash made with the configured cost, so verifying against
// it costs as much as verifying a stored one.
func (s *userService) decoyHash(ctx context.Context) string {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.Hash(ctx, "decoy-password")
		if err == nil {
			s.decoy = hash
		}
	})
	return s.decoy
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
