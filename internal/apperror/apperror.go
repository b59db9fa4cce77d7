package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors for the whole service. Services wrap these, handlers map
// them to HTTP status codes with errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrWeakPassword       = errors.New("weak password")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrNotFound           = errors.New("not found")
	ErrEmptyPost          = errors.New("empty post")
	ErrInvalidMediaType   = errors.New("invalid media type")
	ErrMediaTooLarge      = errors.New("media too large")
	ErrStorage            = errors.New("storage error")
)

// AppError pairs a sentinel with a message that is safe to show callers.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, message string) *AppError {
	return &AppError{Err: sentinel, Message: message}
}

func Validation(message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// Storage wraps an unexpected persistence failure. The underlying err stays
// in the chain for logging; Message is all a caller ever sees.
func Storage(err error) *AppError {
	return &AppError{Err: fmt.Errorf("%w: %v", ErrStorage, err), Message: "internal server error"}
}
