package types

// City is an immutable catalog record. The slug is the external identifier
// used by every other lookup.
type City struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Attraction belongs to exactly one city. Cost and tip fields are optional;
// an empty string means "not applicable".
type Attraction struct {
	ID             int    `json:"id"`
	CityID         int    `json:"cityId"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Cost           string `json:"cost,omitempty"`
	TipTitle       string `json:"tipTitle,omitempty"`
	TipDescription string `json:"tipDescription,omitempty"`
}

// DayHeader titles one day of a city's stored itinerary. At most one header
// exists per (cityId, dayNumber) pair.
type DayHeader struct {
	ID        int    `json:"id"`
	CityID    int    `json:"cityId"`
	DayNumber int    `json:"dayNumber"`
	Title     string `json:"title"`
}

// ItineraryItem schedules an attraction on a specific day. AttractionID is a
// lookup key only, not a back-pointer.
type ItineraryItem struct {
	ID           int    `json:"id"`
	CityID       int    `json:"cityId"`
	AttractionID int    `json:"attractionId"`
	DayNumber    int    `json:"dayNumber"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Duration     string `json:"duration"`
	Title        string `json:"title"`
	SortOrder    int    `json:"sortOrder"`
}

// InsertCity carries the fields for a catalog insert; the repository assigns
// the ID.
type InsertCity struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type InsertAttraction struct {
	CityID         int    `json:"cityId"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Cost           string `json:"cost,omitempty"`
	TipTitle       string `json:"tipTitle,omitempty"`
	TipDescription string `json:"tipDescription,omitempty"`
}

type InsertDayHeader struct {
	CityID    int    `json:"cityId"`
	DayNumber int    `json:"dayNumber"`
	Title     string `json:"title"`
}

type InsertItineraryItem struct {
	CityID       int    `json:"cityId"`
	AttractionID int    `json:"attractionId"`
	DayNumber    int    `json:"dayNumber"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Duration     string `json:"duration"`
	Title        string `json:"title"`
	SortOrder    int    `json:"sortOrder"`
}
