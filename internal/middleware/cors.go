package middleware

import (
	"net/http"

	"checkin-backend/internal/config"

	"github.com/rs/cors"
)

// NewCORS builds the CORS layer. The client is a mobile app talking
// over Bearer tokens, so the default is a wildcard origin without
// credentials; a deployment pinning origins in config gets credentialed
// CORS instead.
func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	origins := cfg.Server.CorsAllowedOrigins
	methods := cfg.Server.CorsAllowedMethods
	headers := cfg.Server.CorsAllowedHeaders

	pinned := len(origins) > 0
	if !pinned {
		origins = []string{"*"}
	}
	if len(methods) == 0 {
		methods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	}
	if len(headers) == 0 {
		headers = []string{"Authorization", "Content-Type"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   methods,
		AllowedHeaders:   headers,
		AllowCredentials: pinned,
		MaxAge:           300, // 5 minutes
	})

	return c.Handler
}
