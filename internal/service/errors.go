package service

import "errors"

// Error classes surfaced to transports. Service errors wrap exactly one of
// these; anything else is an internal failure.
var (
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
)

var (
	// ErrUserAlreadyExists is returned when attempting to register with an existing username.
	ErrUserAlreadyExists = classed(ErrConflict, "user already exists")
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	ErrInvalidCredentials = classed(ErrUnauthenticated, "invalid credentials")
	// ErrMovieNotFound indicates no movie carries the requested title.
	ErrMovieNotFound = classed(ErrNotFound, "movie not found")
)

type classError struct {
	class error
	msg   string
}

func classed(class error, msg string) error {
	return &classError{class: class, msg: msg}
}

func (e *classError) Error() string { return e.msg }

func (e *classError) Unwrap() error { return e.class }

// validationError keeps the field level detail that is safe to show clients.
type validationError struct {
	err error
}

func invalid(err error) error {
	return &validationError{err: err}
}

func (e *validationError) Error() string { return e.err.Error() }

func (e *validationError) Unwrap() []error { return []error{ErrValidation, e.err} }
