package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type RatingService interface {
	// SubmitRating overwrites the rating and review of an existing entry.
	SubmitRating(ctx context.Context, id int64, rating, review string) (*response.MovieResponse, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) SubmitRating(ctx context.Context, id int64, rating, review string) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", translateRepoErr(err))
	}

	value, err := parseRating(rating)
	if err != nil {
		s.log.Warn("Invalid rating",
			zap.Int64("movie_id", id),
			zap.String("rating", rating),
		)
		return nil, err
	}

	if movie.Rating == value && movie.Review == review {
		s.log.Debug("Rating unchanged", zap.Int64("movie_id", id))
		resp := response.MovieToResponse(movie)
		return &resp, nil
	}

	movie.Rating = value
	movie.Review = review

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update rating",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("update rating: %w", translateRepoErr(err))
	}

	s.log.Info("Movie rated",
		zap.Int64("movie_id", id),
		zap.Float64("rating", value),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// parseRating accepts any finite decimal number.
func parseRating(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: rating %q is not a number", ErrValidation, raw)
	}
	return value, nil
}
