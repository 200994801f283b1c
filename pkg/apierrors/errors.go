package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrRateLimited   = errors.New("too many requests, please try again later")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotConfigured = errors.New("service not configured")
	ErrTooLarge      = errors.New("file too large")
)

// Validation builds an invalid-input error carrying the first violation message.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

// NotFound builds a not-found error for a named resource.
func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// HTTPStatus maps an error to its response status. Anything outside the
// taxonomy is a server error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the machine-readable code used in the response envelope.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrTooLarge):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrRateLimited):
		return "RATE_LIMITED"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrNotConfigured):
		return "NOT_CONFIGURED"
	default:
		return "INTERNAL_ERROR"
	}
}
