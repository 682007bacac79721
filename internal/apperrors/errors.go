package apperrors

import (
	"errors"
	"fmt"
)

// Error variables shared by services and repositories.
// Handlers map them to HTTP status codes with errors.Is.
var (
	// ErrInvalidInput indicates malformed or disallowed client input (400).
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyExists indicates a currency is already in the watchlist (409).
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound indicates a currency is not in the watchlist (404).
	ErrNotFound = errors.New("not found")
)

// Error is a domain error carrying a client-facing message.
// errors.Is matches it against its Kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// New returns an *Error of the given kind with a formatted message.
func New(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Message returns the client-facing message of err, or fallback if err
// carries none.
func Message(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}
