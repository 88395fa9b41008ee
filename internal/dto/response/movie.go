package response

import (
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Year        int       `json:"year"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	Ranking     int       `json:"ranking"`
	Review      string    `json:"review"`
	ImageURL    string    `json:"image_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AddedMovieResponse is returned after a candidate is cataloged; Next is
// where the client goes to rate the new entry.
type AddedMovieResponse struct {
	Movie MovieResponse `json:"movie"`
	Next  string        `json:"next"`
}

// RatingPath is the rating editor entry point for a catalog entry.
func RatingPath(id int64) string {
	return fmt.Sprintf("/api/movies/%d/rating", id)
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Year:        movie.Year,
		Description: movie.Description,
		Rating:      movie.Rating,
		Ranking:     movie.Ranking,
		Review:      movie.Review,
		ImageURL:    movie.ImageURL,
		UpdatedAt:   movie.UpdatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
