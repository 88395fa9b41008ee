package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/tmdb"

	"go.uber.org/zap"
)

// AddMovieService drives the two-step add flow: search returns lightweight
// candidates, and only the selected candidate has its details fetched and
// is stored.
type AddMovieService interface {
	SearchCandidates(ctx context.Context, query string) ([]response.CandidateResponse, error)
	AddCandidate(ctx context.Context, externalID int64) (*response.AddedMovieResponse, error)
}

type addMovieService struct {
	repo     *repository.Repository
	provider MovieProvider
	log      *zap.Logger
}

func NewAddMovieService(repo *repository.Repository, provider MovieProvider, log *zap.Logger) AddMovieService {
	return &addMovieService{
		repo:     repo,
		provider: provider,
		log:      log.With(zap.String("service", "add_movie")),
	}
}

func (s *addMovieService) SearchCandidates(ctx context.Context, query string) ([]response.CandidateResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	candidates, err := s.provider.SearchTitles(ctx, query)
	if err != nil {
		s.log.Warn("Search failed", zap.String("query", query), zap.Error(err))
		s.checkTokenRejected(err)
		return nil, fmt.Errorf("search titles: %w", translateProviderErr(err))
	}

	s.log.Info("Candidates found",
		zap.String("query", query),
		zap.Int("count", len(candidates)),
	)

	return response.CandidatesToResponse(candidates), nil
}

func (s *addMovieService) AddCandidate(ctx context.Context, externalID int64) (*response.AddedMovieResponse, error) {
	if externalID < 1 {
		return nil, fmt.Errorf("%w: invalid external id %d", ErrValidation, externalID)
	}

	// The lookup and insert finish even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	details, err := s.provider.FetchDetails(ctx, externalID)
	if err != nil {
		s.log.Warn("Fetch details failed",
			zap.Int64("external_id", externalID),
			zap.Error(err),
		)
		s.checkTokenRejected(err)
		return nil, fmt.Errorf("fetch details: %w", translateProviderErr(err))
	}

	movie := entity.NewMovie(
		details.Title,
		details.Year,
		details.Description,
		s.provider.PosterURL(details.PosterPath),
	)

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("add movie: %w", translateRepoErr(err))
	}

	s.log.Info("Movie added",
		zap.Int64("movie_id", movie.ID),
		zap.Int64("external_id", externalID),
		zap.String("title", movie.Title),
	)

	return &response.AddedMovieResponse{
		Movie: response.MovieToResponse(movie),
		Next:  response.RatingPath(movie.ID),
	}, nil
}

// checkTokenRejected surfaces a bad MOVIE_API_ACCESS_TOKEN at Error level,
// since every later provider call will fail the same way.
func (s *addMovieService) checkTokenRejected(err error) {
	var apiErr *tmdb.APIError
	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
		s.log.Error("TMDB rejected the access token",
			zap.Int("status", apiErr.StatusCode),
		)
	}
}
