package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows browser front ends on other origins to call the API
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:       []string{"Content-Type", RequestIDHeader},
		ExposedHeaders:       []string{"Location", RequestIDHeader},
		OptionsSuccessStatus: http.StatusNoContent,
	})
}
