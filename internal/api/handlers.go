package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/holiday-countdown/internal/board"
	"github.com/zapponejosh/holiday-countdown/internal/calendar"
	"github.com/zapponejosh/holiday-countdown/internal/countdown"
	"github.com/zapponejosh/holiday-countdown/internal/holiday"
	"github.com/zapponejosh/holiday-countdown/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	clock  calendar.Clock
	engine countdown.Engine
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(clock calendar.Clock, engine countdown.Engine, logger *slog.Logger) *Handlers {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		clock:  clock,
		engine: engine,
		logger: logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
		"now":    h.clock.Now().String(),
	})
}

// GetCountdown handles GET /api/v1/countdown
func (h *Handlers) GetCountdown(w http.ResponseWriter, r *http.Request) {
	now, ok := h.momentFor(w, r)
	if !ok {
		return
	}

	b := board.Compute(now, h.engine)
	logger.FromContext(r.Context(), h.logger).Debug("countdown computed",
		slog.String("now", now.String()),
		slog.Int("holidays", len(b.Entries)),
	)

	WriteSuccess(w, newBoardResponse(b))
}

// GetHolidayCountdown handles GET /api/v1/countdown/{holiday}
func (h *Handlers) GetHolidayCountdown(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "holiday")
	hol, err := holiday.Parse(name)
	if err != nil {
		WriteNotFound(w, "Unknown holiday: "+name)
		return
	}

	now, ok := h.momentFor(w, r)
	if !ok {
		return
	}

	entry := board.ComputeEntry(now, hol, h.engine)
	logger.FromContext(r.Context(), h.logger).Debug("holiday countdown computed",
		slog.String("holiday", hol.Slug()),
		slog.String("date", entry.Date.ISO()),
		slog.Int64("days", entry.Remaining.Days),
	)

	WriteSuccess(w, newEntryResponse(entry))
}

// momentFor returns the moment a request should be evaluated at: the ?at
// parameter when present, otherwise a fresh clock reading. On a bad ?at it
// writes a 400 and returns false.
func (h *Handlers) momentFor(w http.ResponseWriter, r *http.Request) (calendar.Moment, bool) {
	at := r.URL.Query().Get("at")
	if at == "" {
		return h.clock.Now(), true
	}

	now, err := calendar.ParseMoment(at, h.engine.Location())
	if err != nil {
		WriteBadRequest(w, err.Error())
		return calendar.Moment{}, false
	}
	return now, true
}
