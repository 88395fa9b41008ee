package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AddMovieHandler struct {
	service usecase.AddMovieService
	log     *zap.Logger
}

func NewAddMovieHandler(service usecase.AddMovieService, log *zap.Logger) *AddMovieHandler {
	return &AddMovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "add_movie")),
	}
}

// Search handles POST /api/movies/search and returns candidates to pick from
func (h *AddMovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req request.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	candidates, err := h.service.SearchCandidates(r.Context(), req.Title)
	if err != nil {
		handleServiceError(w, h.log, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "success", candidates)
}

// Select handles POST /api/movies/select/{externalID}; the Location header
// points at the rating editor for the new entry
func (h *AddMovieHandler) Select(w http.ResponseWriter, r *http.Request) {
	externalID, ok := utils.ParseID(chi.URLParam(r, "externalID"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid external movie ID", nil)
		return
	}

	added, err := h.service.AddCandidate(r.Context(), externalID)
	if err != nil {
		handleServiceError(w, h.log, err, "add movie")
		return
	}

	utils.ResponseCreated(w, added.Next, "Movie added", added)
}
