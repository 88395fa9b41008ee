package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	movies  usecase.MovieService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, movies usecase.MovieService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		movies:  movies,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// GetRating handles GET /api/movies/{id}/rating: current values for the edit form
func (h *RatingHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}

	movie, err := h.movies.GetMovie(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get rating")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// SubmitRating handles PUT /api/movies/{id}/rating
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}

	var req request.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.SubmitRating(r.Context(), id, req.Rating, req.Review)
	if err != nil {
		handleServiceError(w, h.log, err, "submit rating")
		return
	}

	utils.ResponseSuccess(w, "Rating saved", movie)
}
