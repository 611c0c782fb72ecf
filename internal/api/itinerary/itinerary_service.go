package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/tripnorth/tripnorth/app/observability/metrics"
	"github.com/tripnorth/tripnorth/internal/api/city"
	"github.com/tripnorth/tripnorth/internal/types"
)

const (
	fallbackReasonQuota   = "AI generation is temporarily over capacity; showing our curated itinerary instead."
	fallbackReasonGeneric = "AI generation failed; showing our curated itinerary instead."
)

// errAISkipped stands in for a narrative-stage failure when the caller asked
// to bypass AI generation outright.
var errAISkipped = fmt.Errorf("ai generation skipped: %w", types.ErrGenerationFailed)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service is the generation orchestrator: it decides AI-vs-stored sourcing,
// runs the generator, interprets failures, and executes the fallback chain.
// Every invocation is one independent pass; no state survives a request.
type Service interface {
	GetItinerary(ctx context.Context, citySlug string, days int, useAI, skipAI bool) (*types.CompleteItinerary, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger    *slog.Logger
	cityRepo  city.Repository
	repo      Repository
	generator Generator
}

func NewItineraryService(cityRepo city.Repository, repo Repository, generator Generator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		cityRepo:  cityRepo,
		repo:      repo,
		generator: generator,
	}
}

func (s *ServiceImpl) GetItinerary(ctx context.Context, citySlug string, days int, useAI, skipAI bool) (*types.CompleteItinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GetItinerary")
	defer span.End()

	l := s.logger.With(
		slog.String("method", "GetItinerary"),
		slog.String("city", citySlug),
		slog.Int("days", days),
		slog.Bool("use_ai", useAI),
		slog.Bool("skip_ai", skipAI),
	)
	start := time.Now()
	defer func() {
		if m := metrics.Get(); m != nil {
			m.GenerationDurationSeconds.Record(ctx, time.Since(start).Seconds())
		}
	}()
	if m := metrics.Get(); m != nil {
		m.GenerationRequestsTotal.Add(ctx, 1)
	}

	resolvedCity, err := s.cityRepo.GetCityBySlug(ctx, citySlug)
	if err != nil {
		span.SetStatus(codes.Error, "City not found")
		return nil, fmt.Errorf("city %q: %w", citySlug, err)
	}

	if !useAI {
		stored, err := s.repo.GetItinerary(ctx, citySlug, days)
		if err != nil {
			span.SetStatus(codes.Error, "Stored itinerary not found")
			return nil, err
		}
		l.InfoContext(ctx, "Served stored itinerary", slog.Int("day_count", len(stored.Days)))
		return stored, nil
	}

	// Pre-fetch the stored itinerary as a latent fallback candidate. The
	// extra lookup is accepted even when AI succeeds so the fallback never
	// needs a second round-trip.
	stored, storedErr := s.repo.GetItinerary(ctx, citySlug, days)
	if storedErr != nil {
		stored = nil
		l.DebugContext(ctx, "No stored fallback candidate", slog.Any("error", storedErr))
	}

	var genErr error
	if skipAI {
		genErr = errAISkipped
	} else {
		var generated []types.ItineraryDay
		generated, genErr = s.generator.Generate(ctx, resolvedCity.Name, resolvedCity.Description, days)
		if genErr == nil {
			result := &types.CompleteItinerary{
				City: *resolvedCity,
				Days: generated,
			}
			assignMissingActivityIDs(result.Days)
			l.InfoContext(ctx, "Served AI-generated itinerary")
			span.SetStatus(codes.Ok, "AI itinerary generated")
			return result, nil
		}
	}

	return s.resolveFallback(ctx, l, stored, genErr)
}

// resolveFallback classifies the AI failure and substitutes the stored
// itinerary when one exists, surfacing a terminal classified error otherwise.
func (s *ServiceImpl) resolveFallback(ctx context.Context, l *slog.Logger, stored *types.CompleteItinerary, genErr error) (*types.CompleteItinerary, error) {
	quotaRelated := errors.Is(genErr, types.ErrQuotaExceeded) || isQuotaMessage(genErr.Error())
	if quotaRelated {
		if m := metrics.Get(); m != nil {
			m.QuotaErrorsTotal.Add(ctx, 1)
		}
	}

	if stored != nil {
		if m := metrics.Get(); m != nil {
			m.GenerationFallbacksTotal.Add(ctx, 1)
		}
		stored.Fallback = true
		if quotaRelated {
			stored.FallbackReason = fallbackReasonQuota
		} else {
			stored.FallbackReason = fallbackReasonGeneric
		}
		l.WarnContext(ctx, "AI generation failed, served stored fallback",
			slog.Any("error", genErr),
			slog.Bool("quota_related", quotaRelated),
		)
		return stored, nil
	}

	l.ErrorContext(ctx, "AI generation failed with no stored fallback", slog.Any("error", genErr))
	if quotaRelated && !errors.Is(genErr, types.ErrQuotaExceeded) {
		// Classified by message content only; re-tag so callers can rely
		// on errors.Is.
		return nil, fmt.Errorf("%s: %w", genErr.Error(), types.ErrQuotaExceeded)
	}
	return nil, genErr
}

// assignMissingActivityIDs fills any zero activity IDs left behind by the
// structuring stage with random identifiers so every activity is addressable.
func assignMissingActivityIDs(days []types.ItineraryDay) {
	for i := range days {
		for j := range days[i].Activities {
			if days[i].Activities[j].ID == 0 {
				days[i].Activities[j].ID = 100000 + rand.Intn(900000)
			}
		}
	}
}
