package adaptor

import (
	"errors"
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Movie    *MovieHandler
	Rating   *RatingHandler
	AddMovie *AddMovieHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:    NewMovieHandler(service.Movie, log),
		Rating:   NewRatingHandler(service.Rating, service.Movie, log),
		AddMovie: NewAddMovieHandler(service.AddMovie, log),
	}
}

// handleServiceError maps the usecase error taxonomy onto HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, usecase.ErrNotFound.Error())

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrDuplicateTitle):
		log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, usecase.ErrDuplicateTitle.Error())

	case errors.Is(err, usecase.ErrMalformedResponse):
		log.Warn(operation+" failed - malformed provider response",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, usecase.ErrMalformedResponse.Error())

	case errors.Is(err, usecase.ErrUpstream):
		log.Warn(operation+" failed - provider unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, usecase.ErrUpstream.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// movieID reads and validates the {id} path parameter
func movieID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return 0, false
	}
	return id, true
}
