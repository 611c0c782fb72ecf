package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/tripnorth/tripnorth/config"
	generativeAI "github.com/tripnorth/tripnorth/internal/api/generative_ai"
	"github.com/tripnorth/tripnorth/internal/types"
)

// Ensure implementation satisfies the interface
var _ Generator = (*GeneratorImpl)(nil)

// Generator produces a candidate itinerary through the two-stage completion
// protocol: a free-text narrative pass for creative fidelity, then a
// low-temperature structuring pass constrained to JSON.
//
// Only narrative-stage failures propagate, classified as ErrQuotaExceeded or
// ErrGenerationFailed. Structuring-stage failures are always absorbed into a
// synthetic placeholder itinerary, so a successful narrative pass always
// yields exactly the requested number of days.
type Generator interface {
	Generate(ctx context.Context, cityName, cityDescription string, days int) ([]types.ItineraryDay, error)
}

// GeneratorImpl provides the implementation for Generator.
type GeneratorImpl struct {
	logger      *slog.Logger
	aiClient    generativeAI.CompletionClient
	narrative   config.StageConfig
	structuring config.StageConfig
}

func NewGenerator(aiClient generativeAI.CompletionClient, narrative, structuring config.StageConfig, logger *slog.Logger) *GeneratorImpl {
	return &GeneratorImpl{
		logger:      logger,
		aiClient:    aiClient,
		narrative:   narrative,
		structuring: structuring,
	}
}

func (g *GeneratorImpl) Generate(ctx context.Context, cityName, cityDescription string, days int) ([]types.ItineraryDay, error) {
	l := g.logger.With(
		slog.String("method", "Generate"),
		slog.String("city", cityName),
		slog.Int("days", days),
	)

	// Stage 1: narrative. No schema enforcement here; the free-form pass
	// produces noticeably richer content than asking for JSON directly.
	narrativeText, err := g.aiClient.Complete(ctx, generativeAI.CompletionRequest{
		SystemPrompt: getNarrativeSystemPrompt(cityName, cityDescription, days),
		UserPrompt:   getNarrativeUserPrompt(cityName, days),
		Temperature:  g.narrative.Temperature,
		MaxTokens:    g.narrative.MaxTokens,
	})
	if err != nil {
		classified := classifyNarrativeError(err)
		l.ErrorContext(ctx, "Narrative stage failed", slog.Any("error", err))
		return nil, classified
	}

	// Stage 2: structuring. Failures never propagate past this component;
	// the synthetic itinerary keeps the output schema-complete.
	structuredText, err := g.aiClient.Complete(ctx, generativeAI.CompletionRequest{
		UserPrompt:  getStructuringPrompt(cityName, narrativeText),
		Temperature: g.structuring.Temperature,
		MaxTokens:   g.structuring.MaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		l.WarnContext(ctx, "Structuring stage failed, emitting synthetic itinerary", slog.Any("error", err))
		return g.syntheticFallback(cityName, days, narrativeText), nil
	}

	parsedDays, err := parseStructuredDays(structuredText)
	if err != nil {
		l.WarnContext(ctx, "Structured response unparseable, emitting synthetic itinerary", slog.Any("error", err))
		return g.syntheticFallback(cityName, days, narrativeText), nil
	}

	reconciled := reconcileDayCount(cityName, parsedDays, days)
	l.InfoContext(ctx, "Generated structured itinerary", slog.Int("parsed_days", len(parsedDays)))
	return reconciled, nil
}

// syntheticFallback builds a fully synthetic itinerary and decorates it with
// whatever day titles and description fragments the narrative text yields.
func (g *GeneratorImpl) syntheticFallback(cityName string, days int, narrativeText string) []types.ItineraryDay {
	placeholder := buildPlaceholderItinerary(cityName, days)
	enrichFromNarrative(placeholder, narrativeText)
	return placeholder
}

// reconcileDayCount forces the generator output to exactly the requested day
// count: excess days are truncated, missing days are padded with synthetic
// placeholders, and day numbers are renumbered contiguously from 1.
func reconcileDayCount(cityName string, days []types.ItineraryDay, requested int) []types.ItineraryDay {
	sort.SliceStable(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })

	if len(days) > requested {
		days = days[:requested]
	}
	for len(days) < requested {
		days = append(days, buildPlaceholderDay(cityName, len(days)+1))
	}
	for i := range days {
		days[i].DayNumber = i + 1
	}
	return days
}

// classifyNarrativeError maps a stage-1 failure onto the error taxonomy.
// Quota detection uses the provider-reported kind when available and falls
// back to scanning the message for quota/rate-limit wording.
func classifyNarrativeError(err error) error {
	var cerr *generativeAI.CompletionError
	if errors.As(err, &cerr) {
		if cerr.Kind == generativeAI.KindQuota || cerr.Kind == generativeAI.KindRateLimit {
			return fmt.Errorf("narrative stage: %s: %w", cerr.Message, types.ErrQuotaExceeded)
		}
	}
	if isQuotaMessage(err.Error()) {
		return fmt.Errorf("narrative stage: %s: %w", err.Error(), types.ErrQuotaExceeded)
	}
	return fmt.Errorf("narrative stage: %s: %w", err.Error(), types.ErrGenerationFailed)
}

func isQuotaMessage(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "quota") || strings.Contains(m, "rate limit") || strings.Contains(m, "429")
}
