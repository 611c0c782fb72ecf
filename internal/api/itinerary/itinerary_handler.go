package itinerary

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	api "github.com/tripnorth/tripnorth/internal/api"
	"github.com/tripnorth/tripnorth/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
	minDays int
	maxDays int
}

func NewItineraryHandler(service Service, minDays, maxDays int, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		minDays: minDays,
		maxDays: maxDays,
	}
}

// GetItinerary handles GET /itinerary?city=&days=&useAI=&skipAI=
//
// Day-count bounds are validated here, at the caller boundary; the
// orchestrator assumes they hold.
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetItinerary")
	defer span.End()

	q := r.URL.Query()
	citySlug := q.Get("city")
	l := h.logger.With(slog.String("method", "GetItinerary"), slog.String("city", citySlug))

	if citySlug == "" {
		span.SetStatus(codes.Error, "Missing city parameter")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Missing required parameter: city", nil)
		return
	}

	days, err := strconv.Atoi(q.Get("days"))
	if err != nil {
		span.SetStatus(codes.Error, "Invalid days parameter")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request parameters: days must be an integer", nil)
		return
	}
	if days < h.minDays || days > h.maxDays {
		span.SetStatus(codes.Error, "Days out of range")
		api.ErrorResponse(w, r, http.StatusBadRequest,
			fmt.Sprintf("Days must be between %d and %d", h.minDays, h.maxDays), nil)
		return
	}

	useAI := true
	if v := q.Get("useAI"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			useAI = parsed
		}
	}
	skipAI := false
	if v := q.Get("skipAI"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			skipAI = parsed
		}
	}

	itinerary, err := h.service.GetItinerary(ctx, citySlug, days, useAI, skipAI)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		h.writeServiceError(w, r, l, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, itinerary)
	span.SetStatus(codes.Ok, "Itinerary returned successfully")
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, l *slog.Logger, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, types.ErrCityNotFound):
		l.WarnContext(ctx, "City not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "City not found", nil)
	case errors.Is(err, types.ErrItineraryNotFound):
		l.WarnContext(ctx, "Itinerary not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "Itinerary not found", nil)
	case errors.Is(err, types.ErrQuotaExceeded):
		l.WarnContext(ctx, "AI capacity exhausted", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusTooManyRequests,
			"AI itinerary service is over capacity. Please try again later or request the curated itinerary.",
			map[string]interface{}{"useStoredItinerary": true})
	case errors.Is(err, types.ErrGenerationFailed):
		l.ErrorContext(ctx, "Itinerary generation failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError,
			"Failed to generate itinerary. Please try again or request the curated itinerary.",
			map[string]interface{}{"useStoredItinerary": true})
	default:
		l.ErrorContext(ctx, "Unexpected service error", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch itinerary", nil)
	}
}
