package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000", // local dev
}

// CORS returns middleware that applies the API's allowed origin policy. The
// configured frontend URL is appended to the defaults when present.
func CORS(frontendURL string) func(http.Handler) http.Handler {
	origins := defaultCORSOrigins
	if trimmed := strings.TrimSpace(frontendURL); trimmed != "" && !containsOrigin(origins, trimmed) {
		origins = append(append([]string{}, origins...), trimmed)
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}

func containsOrigin(origins []string, candidate string) bool {
	for _, origin := range origins {
		if strings.EqualFold(origin, candidate) {
			return true
		}
	}
	return false
}
