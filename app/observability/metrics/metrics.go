package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	GenerationRequestsTotal   metric.Int64Counter
	GenerationDurationSeconds metric.Float64Histogram
	GenerationFallbacksTotal  metric.Int64Counter
	QuotaErrorsTotal          metric.Int64Counter
	CompletionCallsTotal      metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments exactly once.
// It gets the Meter from the globally configured MeterProvider, so the
// tracer/metrics bootstrap must run first.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("TripNorth")
		var err error
		m := &AppMetrics{}

		m.GenerationRequestsTotal, err = meter.Int64Counter(
			"itinerary_generation_requests_total",
			metric.WithDescription("Total number of itinerary generation requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_generation_requests_total: %v", err)
		}

		m.GenerationDurationSeconds, err = meter.Float64Histogram(
			"itinerary_generation_duration_seconds",
			metric.WithDescription("Duration of itinerary generation requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_generation_duration_seconds: %v", err)
		}

		m.GenerationFallbacksTotal, err = meter.Int64Counter(
			"itinerary_generation_fallbacks_total",
			metric.WithDescription("Total number of itineraries served from the stored-data fallback"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_generation_fallbacks_total: %v", err)
		}

		m.QuotaErrorsTotal, err = meter.Int64Counter(
			"ai_quota_errors_total",
			metric.WithDescription("Total number of quota or rate-limit classified AI failures"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create ai_quota_errors_total: %v", err)
		}

		m.CompletionCallsTotal, err = meter.Int64Counter(
			"ai_completion_calls_total",
			metric.WithDescription("Total number of outbound completion calls"),
			metric.WithUnit("{call}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create ai_completion_calls_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the initialized metrics, or nil when InitAppMetrics has not
// run. Callers treat nil as "metrics disabled", which keeps tests quiet.
func Get() *AppMetrics {
	return appMetrics
}
