package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                         liveness probe
//	GET /api/v1/countdown               every holiday
//	GET /api/v1/countdown/{holiday}     one holiday (thanksgiving, christmas)
//
// Both countdown routes accept ?at=YYYY-MM-DD[THH:MM:SS] to evaluate a
// specific local moment instead of the current time.
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		RequestIDMiddleware(),
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	router.Get("/health", handlers.HealthCheck)

	router.Route("/api/v1/countdown", func(r chi.Router) {
		r.Get("/", handlers.GetCountdown)
		r.Get("/{holiday}", handlers.GetHolidayCountdown)
	})

	return router
}
