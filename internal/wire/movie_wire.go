package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, handler *adaptor.Handler) {
	r.Route("/api/movies", func(r chi.Router) {
		// GET /api/movies - catalog ranked by rating
		r.Get("/", handler.Movie.ListMovies)

		// Add-movie workflow: search the provider, then pick one candidate
		r.Post("/search", handler.AddMovie.Search)
		r.Post("/select/{externalID}", handler.AddMovie.Select)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.Movie.GetMovie)
			r.Delete("/", handler.Movie.DeleteMovie)

			// Rating editor
			r.Get("/rating", handler.Rating.GetRating)
			r.Put("/rating", handler.Rating.SubmitRating)
		})
	})
}
