package usecase

import (
	"context"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/tmdb"

	"go.uber.org/zap"
)

// MovieProvider is the external search client used by the add-movie workflow.
type MovieProvider interface {
	SearchTitles(ctx context.Context, query string) ([]tmdb.Candidate, error)
	FetchDetails(ctx context.Context, externalID int64) (*tmdb.Details, error)
	PosterURL(posterPath string) string
}

type Service struct {
	Movie    MovieService
	Rating   RatingService
	AddMovie AddMovieService
}

func NewService(repo *repository.Repository, provider MovieProvider, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(repo, log),
		Rating:   NewRatingService(repo, log),
		AddMovie: NewAddMovieService(repo, provider, log),
	}
}
