package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mbaird/datefacts-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                                - liveness check, unauthenticated
//	GET /api/v1/summary/{year}/{month}/{day}   - full date summary
//	GET /api/v1/leap-year/{year}               - leap year flag
//	GET /api/v1/weekday/{year}/{month}/{day}   - weekday name
//	GET /api/v1/week/{year}/{month}/{day}      - approximate week index
//
// The /api/v1 routes sit behind the API key guard when a key is configured.
func SetupRoutes(handlers *Handlers, cfg *config.Config, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(log),
		RequestIDMiddleware(),
		LoggingMiddleware(log),
		CORSMiddleware(),
	)

	// Public routes
	r.Get("/health", handlers.HealthCheck)

	// Date facts (API key required when configured)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg, log))

		r.Get("/summary/{year}/{month}/{day}", handlers.GetDateSummary)
		r.Get("/leap-year/{year}", handlers.GetLeapYear)
		r.Get("/weekday/{year}/{month}/{day}", handlers.GetWeekday)
		r.Get("/week/{year}/{month}/{day}", handlers.GetWeekNumber)
	})

	return r
}
