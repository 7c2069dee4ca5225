package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the browser front-ends (customer menu and POS) listed in origins.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestIDHeader, sessionIDHeader, actorRoleHeader, stallIDHeader},
		ExposedHeaders:   []string{requestIDHeader, sessionIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
