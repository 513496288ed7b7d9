package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is the user-facing fallback for unexpected failures.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes failures of the event feed.
	RedisErrorMessage = "redis operation failed"
)

// AppError wraps an underlying error with an HTTP status and a safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error prefixes the wrapped error, when present, with the safe message.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches the wrapped error.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or to the wrapped error in the chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// New builds an AppError; err may be nil for errors raised by the caller itself.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// NotFound is a 404 carrying message.
func NotFound(message string) *AppError {
	return New(nil, http.StatusNotFound, message)
}

// Conflict is a 409 carrying message.
func Conflict(message string) *AppError {
	return New(nil, http.StatusConflict, message)
}

// WrapRedis wraps a Redis error with a consistent status code and message.
func WrapRedis(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, RedisErrorMessage)
}

// Resolve turns any error into an AppError, falling back to a 500 with the
// system message when err carries no status of its own.
func Resolve(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(err, http.StatusInternalServerError, SystemErrorMessage)
}
