package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tripnorth/tripnorth/internal/types"
)

// parseStructuredDays decodes the structuring-stage response into typed
// days. Markdown code fences are tolerated even in JSON mode.
func parseStructuredDays(jsonStr string) ([]types.ItineraryDay, error) {
	var payload struct {
		Days []types.ItineraryDay `json:"days"`
	}
	if err := json.Unmarshal([]byte(cleanJSONResponse(jsonStr)), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse structured itinerary JSON: %w", err)
	}
	if len(payload.Days) == 0 {
		return nil, fmt.Errorf("structured itinerary response contained no days")
	}
	return payload.Days, nil
}

func cleanJSONResponse(txt string) string {
	cleaned := strings.TrimSpace(txt)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
