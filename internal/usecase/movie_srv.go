package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	// ListRanked returns every entry by descending rating and persists the
	// 1-based position of each entry as its ranking.
	ListRanked(ctx context.Context) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, id int64) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListRanked(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx, repository.OrderByRatingDesc)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	changed := assignRankings(movies)
	if err := s.repo.Movie.UpdateRankings(ctx, changed); err != nil {
		s.log.Error("Failed to persist rankings",
			zap.Error(err),
			zap.Int("changed", len(changed)),
		)
		return nil, fmt.Errorf("persist rankings: %w", translateRepoErr(err))
	}

	s.log.Info("Movies ranked",
		zap.Int("count", len(movies)),
		zap.Int("changed", len(changed)),
	)

	return response.MoviesToResponse(movies), nil
}

// assignRankings sets Ranking to the 1-based position of each movie and
// returns only the entries whose ranking moved.
func assignRankings(movies []*entity.Movie) map[int64]int {
	changed := make(map[int64]int)
	for i, movie := range movies {
		rank := i + 1
		if movie.Ranking != rank {
			movie.Ranking = rank
			changed[movie.ID] = rank
		}
	}
	return changed
}

func (s *movieService) GetMovie(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", translateRepoErr(err))
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete movie: %w", translateRepoErr(err))
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
