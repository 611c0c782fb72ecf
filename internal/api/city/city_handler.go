package city

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	api "github.com/tripnorth/tripnorth/internal/api"
	"github.com/tripnorth/tripnorth/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewCityHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// GetAllCities handles GET /cities - returns the full catalog
func (h *Handler) GetAllCities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "GetAllCities")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetAllCities"))

	cities, err := h.service.GetAllCities(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to retrieve cities", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch cities", nil)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, cities)
	span.SetStatus(codes.Ok, "Cities returned successfully")
}

// GetCityBySlug handles GET /cities/{slug}
func (h *Handler) GetCityBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "GetCityBySlug")
	defer span.End()

	slug := chi.URLParam(r, "slug")
	l := h.logger.With(slog.String("method", "GetCityBySlug"), slog.String("slug", slug))

	city, err := h.service.GetCityBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, types.ErrCityNotFound) {
			l.WarnContext(ctx, "City not found")
			span.SetStatus(codes.Error, "City not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "City not found", nil)
			return
		}
		l.ErrorContext(ctx, "Failed to retrieve city", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch city", nil)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, city)
	span.SetStatus(codes.Ok, "City returned successfully")
}

// SearchCities handles GET /cities/search?q=
func (h *Handler) SearchCities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "SearchCities")
	defer span.End()

	query := r.URL.Query().Get("q")
	l := h.logger.With(slog.String("method", "SearchCities"), slog.String("query", query))

	cities, err := h.service.SearchCities(ctx, query)
	if err != nil {
		l.ErrorContext(ctx, "City search failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to search cities", nil)
		return
	}

	l.InfoContext(ctx, "City search completed", slog.Int("count", len(cities)))
	api.WriteJSONResponse(w, r, http.StatusOK, cities)
	span.SetStatus(codes.Ok, "Search results returned")
}
