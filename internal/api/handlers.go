package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mbaird/datefacts-api/internal/calendar"
	"github.com/mbaird/datefacts-api/internal/config"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		cfg:    cfg,
		logger: logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	// The service computes everything on the fly; if we can answer,
	// we are healthy.
	WriteSuccess(w, map[string]string{
		"status": "healthy",
		"env":    h.cfg.Env,
	})
}

// GetDateSummary handles GET /api/v1/summary/{year}/{month}/{day}
func (h *Handlers) GetDateSummary(w http.ResponseWriter, r *http.Request) {
	day, month, year, ok := h.datePathParams(w, r)
	if !ok {
		return
	}

	summary, err := calendar.DateSummary(day, month, year)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, summary)
}

// GetLeapYear handles GET /api/v1/leap-year/{year}
func (h *Handlers) GetLeapYear(w http.ResponseWriter, r *http.Request) {
	year, ok := h.intPathParam(w, r, "year")
	if !ok {
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":      year,
		"leap_year": calendar.IsLeapYear(year),
	})
}

// GetWeekday handles GET /api/v1/weekday/{year}/{month}/{day}
func (h *Handlers) GetWeekday(w http.ResponseWriter, r *http.Request) {
	day, month, year, ok := h.datePathParams(w, r)
	if !ok {
		return
	}

	weekday, err := calendar.DayOfWeek(day, month, year)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":    year,
		"month":   month,
		"day":     day,
		"weekday": weekday.String(),
	})
}

// GetWeekNumber handles GET /api/v1/week/{year}/{month}/{day}
func (h *Handlers) GetWeekNumber(w http.ResponseWriter, r *http.Request) {
	day, month, year, ok := h.datePathParams(w, r)
	if !ok {
		return
	}

	// The week calculation trusts its month; enforce the contract at
	// the transport boundary instead.
	if month < 1 || month > 12 {
		WriteBadRequest(w, fmt.Sprintf("Month must be in 1..12, got %d", month), "INVALID_INPUT")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":  year,
		"month": month,
		"day":   day,
		"week":  calendar.WeekNumber(day, month, year),
	})
}

// datePathParams extracts {year}, {month}, and {day} from the route.
// On failure it writes a 400 response and returns ok=false.
func (h *Handlers) datePathParams(w http.ResponseWriter, r *http.Request) (day, month, year int, ok bool) {
	year, yearOK := h.intPathParam(w, r, "year")
	if !yearOK {
		return 0, 0, 0, false
	}
	month, monthOK := h.intPathParam(w, r, "month")
	if !monthOK {
		return 0, 0, 0, false
	}
	day, dayOK := h.intPathParam(w, r, "day")
	if !dayOK {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

// intPathParam parses a single integer path parameter, writing a 400
// response when the value is missing or not a number.
func (h *Handlers) intPathParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		WriteBadRequest(w, fmt.Sprintf("Missing %s parameter", name))
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid %s: %q is not an integer", name, raw))
		return 0, false
	}
	return value, true
}

// writeCalendarError maps calendar package errors onto HTTP responses.
func (h *Handlers) writeCalendarError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, calendar.ErrInvalidInput) {
		WriteBadRequest(w, err.Error(), "INVALID_INPUT")
		return
	}

	h.logger.Error("calendar computation failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	WriteInternalError(w, "Failed to compute date facts")
}
