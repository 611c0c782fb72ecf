package types

// ItineraryActivity is an assembled, transient view of one scheduled
// activity. It is produced either by joining an ItineraryItem with its
// Attraction or directly by the LLM pipeline.
type ItineraryActivity struct {
	ID             int    `json:"id"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Duration       string `json:"duration"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Cost           string `json:"cost,omitempty"`
	TipTitle       string `json:"tipTitle,omitempty"`
	TipDescription string `json:"tipDescription,omitempty"`
}

// ItineraryDay groups the activities of one day under a themed title.
// Three activities per day (morning/afternoon/evening) is a convention
// enforced by prompting and reconciliation, not by the schema.
type ItineraryDay struct {
	DayNumber  int                 `json:"dayNumber"`
	Title      string              `json:"title"`
	Activities []ItineraryActivity `json:"activities"`
}

// CompleteItinerary is the unit returned to callers. Days are sorted
// ascending by DayNumber. When the itinerary was served through the fallback
// path the Fallback fields are set; they are omitted otherwise.
type CompleteItinerary struct {
	City           City           `json:"city"`
	Days           []ItineraryDay `json:"days"`
	Fallback       bool           `json:"_fallback,omitempty"`
	FallbackReason string         `json:"_fallbackReason,omitempty"`
}
