// ABOUTME: HTTP server assembly: routing, CORS, logging and rate limiting
// ABOUTME: The monitoring front-end is a browser app, so CORS stays permissive

package api

import (
	"net/http"

	"github.com/rs/cors"

	"mediawatch-api/api/handlers"
	"mediawatch-api/api/middleware"
	"mediawatch-api/core/interfaces"
)

// Config holds configuration for the API surface
type Config struct {
	Logger interfaces.Logger

	// RateRPS and RateBurst bound per-client request rates; zero disables
	// limiting.
	RateRPS   float64
	RateBurst int
}

// NewHandler builds the HTTP handler chain around the pipeline service.
func NewHandler(cfg Config, service handlers.ArticlesService) http.Handler {
	mux := http.NewServeMux()

	articlesHandler := handlers.NewArticlesHandler(service)
	articlesHandler.RegisterRoutes(mux)

	var handler http.Handler = mux

	if cfg.RateRPS > 0 && cfg.RateBurst > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst)
		handler = middleware.RateLimitMiddleware(limiter)(handler)
	}

	if cfg.Logger != nil {
		handler = middleware.RequestLoggingMiddleware(cfg.Logger)(handler)
	}

	// CORS wraps everything so even rejected requests carry the headers.
	handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}).Handler(handler)

	return handler
}
