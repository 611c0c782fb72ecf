package types

import "errors"

// Error taxonomy for the generation pipeline. Handlers map these to HTTP
// statuses with errors.Is; services wrap them with fmt.Errorf("...: %w", err)
// to attach context.
var (
	// ErrCityNotFound is returned when no catalog entry exists for a slug.
	ErrCityNotFound = errors.New("city not found")

	// ErrItineraryNotFound is returned when no stored itinerary exists for a
	// city and day-count combination.
	ErrItineraryNotFound = errors.New("itinerary not found")

	// ErrQuotaExceeded marks a narrative-stage failure classified as
	// provider capacity or rate limiting. Recoverable via the stored-data
	// fallback; retryable with useAI=false otherwise.
	ErrQuotaExceeded = errors.New("ai provider quota exceeded")

	// ErrGenerationFailed marks any other narrative-stage failure.
	ErrGenerationFailed = errors.New("itinerary generation failed")
)
