package api

import (
	"log/slog"
	"net/http"

	"github.com/awrigley/notable-dates-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	baseMiddleware := ChainMiddleware(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	authWrap := AuthMiddleware(cfg, logger)

	// Public routes
	mux.HandleFunc("GET /health", handlers.HealthCheck)
	mux.HandleFunc("GET /api/v1/dates/year/{year}", handlers.GetYearDates)
	mux.HandleFunc("GET /api/v1/dates/{event}/{year}", handlers.GetDate)
	mux.HandleFunc("GET /api/v1/tables/{year}", handlers.GetTable)

	// Writes to the stored tables require the API key
	mux.Handle("POST /api/v1/tables/{year}", authWrap(http.HandlerFunc(handlers.BuildTable)))

	return baseMiddleware(mux)
}
