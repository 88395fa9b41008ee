package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUpstream indicates the provider could not be reached or answered with
	// something that is not a usable JSON document.
	ErrUpstream = errors.New("movie provider request failed")
	// ErrMalformedResponse indicates valid JSON that lacks an expected field.
	ErrMalformedResponse = errors.New("movie provider returned a malformed response")
)

// APIError represents a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb API error: status %d: %s", e.StatusCode, e.Body)
}

// Unwrap lets errors.Is(err, ErrUpstream) match status failures.
func (e *APIError) Unwrap() error {
	return ErrUpstream
}

// IsUnauthorized checks if the bearer token was rejected
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
