package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/awrigley/notable-dates-api/internal/calendar"
	"github.com/awrigley/notable-dates-api/internal/config"
	"github.com/awrigley/notable-dates-api/internal/database"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db          *database.DB
	cfg         *config.Config
	logger      *slog.Logger
	calculators map[string]calendar.Calculator
}

// NewHandlers creates a new Handlers instance with one calculator per
// supported event.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		cfg:    cfg,
		logger: logger,
		calculators: map[string]calendar.Calculator{
			database.EventEasterSunday: calendar.NewEasterCalculator(),
			database.EventLunarNewYear: calendar.NewLunarNewYearCalculator(),
		},
	}
}

// dateResponse is the JSON shape for a computed notable date.
type dateResponse struct {
	Event    string        `json:"event"`
	Year     int           `json:"year"`
	Calendar string        `json:"calendar"`
	Date     calendar.Date `json:"date"`
	ISO      string        `json:"iso"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetDate handles GET /api/v1/dates/{event}/{year}?calendar={name}
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	event := r.PathValue("event")
	calc, ok := h.calculators[event]
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Unknown event: %s", event))
		return
	}

	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", r.PathValue("year")))
		return
	}

	sys, err := parseCalendarParam(r.URL.Query().Get("calendar"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), "UNSUPPORTED_CALENDAR")
		return
	}

	d, err := calc.GetDate(year, sys)
	if err != nil {
		h.writeCalculatorError(w, event, year, err)
		return
	}
	if d == nil {
		WriteError(w, http.StatusNotFound,
			fmt.Sprintf("No %s date for year %d", event, year), "NO_DATE")
		return
	}

	WriteSuccess(w, dateResponse{
		Event:    event,
		Year:     year,
		Calendar: d.System.String(),
		Date:     *d,
		ISO:      d.String(),
	})
}

// GetYearDates handles GET /api/v1/dates/year/{year}?calendar={name}
// It computes every known event for the year; events without a result for
// that year are omitted.
func (h *Handlers) GetYearDates(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", r.PathValue("year")))
		return
	}

	sys, err := parseCalendarParam(r.URL.Query().Get("calendar"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), "UNSUPPORTED_CALENDAR")
		return
	}

	dates := make([]dateResponse, 0, len(h.calculators))
	for _, event := range database.ValidEvents() {
		d, err := h.calculators[event].GetDate(year, sys)
		if err != nil {
			h.writeCalculatorError(w, event, year, err)
			return
		}
		if d == nil {
			continue
		}
		dates = append(dates, dateResponse{
			Event:    event,
			Year:     year,
			Calendar: d.System.String(),
			Date:     *d,
			ISO:      d.String(),
		})
	}

	WriteSuccess(w, map[string]interface{}{
		"year":  year,
		"dates": dates,
	})
}

// GetTable handles GET /api/v1/tables/{year}: the stored, precomputed rows.
func (h *Handlers) GetTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", r.PathValue("year")))
		return
	}

	rows, err := h.db.ListNotableDatesByYear(ctx, year)
	if err != nil {
		h.logger.Error("failed to list notable dates",
			slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve table")
		return
	}
	if len(rows) == 0 {
		WriteNotFound(w, fmt.Sprintf("No stored table for year %d", year))
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":  year,
		"dates": rows,
	})
}

// BuildTable handles POST /api/v1/tables/{year}: computes every event in
// every supported calendar system and stores the results. Combinations a
// calendar cannot represent are skipped, not failed.
func (h *Handlers) BuildTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", r.PathValue("year")))
		return
	}
	if year < 1 {
		WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("Year must be 1 or greater, got %d", year), "INVALID_YEAR")
		return
	}

	stored, skipped, err := h.buildTableForYear(ctx, year)
	if err != nil {
		h.logger.Error("failed to build table",
			slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Failed to build table")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":    year,
		"stored":  stored,
		"skipped": skipped,
	})
}

// buildTableForYear computes and upserts every (event, calendar)
// combination for a year. Returns how many rows were stored and how many
// combinations were skipped because the calendar could not represent the
// result for that year.
func (h *Handlers) buildTableForYear(ctx context.Context, year int) (stored, skipped int, err error) {
	kinds := []calendar.Kind{calendar.Gregorian, calendar.Julian, calendar.ChineseLunisolar}

	for _, event := range database.ValidEvents() {
		for _, kind := range kinds {
			sys, sysErr := calendar.SystemFor(kind)
			if sysErr != nil {
				return stored, skipped, sysErr
			}

			d, calcErr := h.calculators[event].GetDate(year, sys)
			if calcErr != nil {
				if errors.Is(calcErr, calendar.ErrConversion) || errors.Is(calcErr, calendar.ErrUnsupportedCalendar) {
					h.logger.Debug("skipping combination",
						slog.String("event", event),
						slog.Int("year", year),
						slog.String("calendar", kind.String()),
						slog.Any("error", calcErr),
					)
					skipped++
					continue
				}
				return stored, skipped, calcErr
			}
			if d == nil {
				skipped++
				continue
			}

			nd := &database.NotableDate{
				Event:     event,
				Year:      year,
				Calendar:  kind.String(),
				DateYear:  d.Year,
				DateMonth: d.Month,
				DateDay:   d.Day,
			}
			if err := h.db.UpsertNotableDate(ctx, nd); err != nil {
				return stored, skipped, err
			}
			stored++
		}
	}

	return stored, skipped, nil
}

// writeCalculatorError maps calculator errors onto HTTP responses.
func (h *Handlers) writeCalculatorError(w http.ResponseWriter, event string, year int, err error) {
	switch {
	case errors.Is(err, calendar.ErrInvalidYear):
		WriteError(w, http.StatusBadRequest, err.Error(), "INVALID_YEAR")
	case errors.Is(err, calendar.ErrUnsupportedCalendar):
		WriteError(w, http.StatusBadRequest, err.Error(), "UNSUPPORTED_CALENDAR")
	case errors.Is(err, calendar.ErrConversion):
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), "CONVERSION_FAILED")
	default:
		h.logger.Error("calculator failed",
			slog.String("event", event),
			slog.Int("year", year),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to compute date")
	}
}

// parseCalendarParam resolves the optional ?calendar= query parameter.
// An empty value means the Gregorian default (nil system).
func parseCalendarParam(name string) (calendar.System, error) {
	if name == "" {
		return nil, nil
	}
	kind, err := calendar.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return calendar.SystemFor(kind)
}
