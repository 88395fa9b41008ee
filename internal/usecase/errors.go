package usecase

import (
	"errors"
	"fmt"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/tmdb"
)

// Outcomes surfaced to the HTTP layer. Every service error that is not
// one of these is an internal failure.
var (
	ErrUpstream          = errors.New("movie provider unavailable")
	ErrMalformedResponse = errors.New("movie provider returned incomplete data")
	ErrDuplicateTitle    = errors.New("movie already in the catalog")
	ErrNotFound          = errors.New("movie not found")
	ErrValidation        = errors.New("validation failed")
)

func translateRepoErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrMovieNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, repository.ErrDuplicateTitle):
		return fmt.Errorf("%w: %w", ErrDuplicateTitle, err)
	default:
		return err
	}
}

func translateProviderErr(err error) error {
	if errors.Is(err, tmdb.ErrMalformedResponse) {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}
