package itinerary

import (
	"fmt"
	"strings"

	"github.com/tripnorth/tripnorth/internal/types"
)

// buildPlaceholderDay synthesizes a schema-complete day with three
// time-boxed activities. Used when the structuring stage returns fewer days
// than requested or fails to produce parseable JSON. dayNumber is 1-based.
func buildPlaceholderDay(cityName string, dayNumber int) types.ItineraryDay {
	base := (dayNumber - 1) * 3
	return types.ItineraryDay{
		DayNumber: dayNumber,
		Title:     fmt.Sprintf("Day %d in %s", dayNumber, cityName),
		Activities: []types.ItineraryActivity{
			{
				ID:             base + 1,
				StartTime:      "9:00 AM",
				EndTime:        "12:00 PM",
				Duration:       "3 hours",
				Title:          fmt.Sprintf("Morning: Exploring %s's Main Attractions", cityName),
				Description:    fmt.Sprintf("Begin your morning with a visit to the iconic landmarks of %s. Take your time to explore the architecture, cultural significance, and historical importance of these notable sites. Many visitors find the morning hours ideal for photography and enjoying the attractions before the midday crowds arrive. The experience offers a perfect introduction to the city's character and layout.", cityName),
				Location:       fmt.Sprintf("%s City Centre, Main Tourist District", cityName),
				Cost:           "$10-25 CAD per person for attraction entry fees",
				TipTitle:       "Morning Visitor Advantage",
				TipDescription: "Start early around 9 AM to beat the crowds and enjoy shorter lines. Most attractions open at 9 AM, and early morning offers the best lighting for photography.",
			},
			{
				ID:             base + 2,
				StartTime:      "1:00 PM",
				EndTime:        "4:00 PM",
				Duration:       "3 hours",
				Title:          fmt.Sprintf("Afternoon: Cultural Experience in %s", cityName),
				Description:    fmt.Sprintf("Spend your afternoon immersing yourself in the cultural offerings of %s. Whether it's visiting museums, cultural centers, or local markets, this is your chance to connect with the authentic side of the city. The afternoon provides ample time to explore indoor venues and engage with local artisans and performers showcasing Canadian heritage.", cityName),
				Location:       "Cultural District, Arts Centre Area",
				Cost:           "$15-30 CAD for museum entry and local experiences",
				TipTitle:       "Local Transportation Insight",
				TipDescription: "Use public transportation to navigate between attractions. Purchase a day pass for approximately $10 CAD which provides unlimited travel and is more economical than individual tickets.",
			},
			{
				ID:             base + 3,
				StartTime:      "6:00 PM",
				EndTime:        "9:00 PM",
				Duration:       "3 hours",
				Title:          fmt.Sprintf("Evening: Dining and Entertainment in %s", cityName),
				Description:    fmt.Sprintf("Conclude your day with a delightful culinary experience at one of %s's renowned restaurants. The evening atmosphere comes alive with locals and visitors enjoying the city's nightlife. Canadian cuisine offers a diverse range of options from seafood to multicultural influences, reflecting the country's rich heritage and innovation in gastronomy.", cityName),
				Location:       "Entertainment District, Restaurant Row",
				Cost:           "$25-50 CAD per person for dinner, excluding drinks",
				TipTitle:       "Dining Reservation Strategy",
				TipDescription: "Make reservations at popular restaurants at least 1-2 days in advance, especially for weekend dining. Request a table by the window for scenic views if available.",
			},
		},
	}
}

func buildPlaceholderItinerary(cityName string, days int) []types.ItineraryDay {
	out := make([]types.ItineraryDay, 0, days)
	for dayNumber := 1; dayNumber <= days; dayNumber++ {
		out = append(out, buildPlaceholderDay(cityName, dayNumber))
	}
	return out
}

// enrichFromNarrative scans the raw narrative text for recognizable day
// titles and description fragments and substitutes them into the placeholder
// days. It is best-effort decoration: it never fails, and the placeholders
// stand as emitted whenever nothing usable is found.
func enrichFromNarrative(days []types.ItineraryDay, narrative string) {
	if len(narrative) <= 100 {
		return
	}

	lines := strings.Split(narrative, "\n")
	for i := range days {
		if len(lines) <= i*5 {
			continue
		}

		dayLabel := fmt.Sprintf("day %d", i+1)
		for _, line := range lines {
			if strings.Contains(strings.ToLower(line), dayLabel) && len(line) < 100 {
				days[i].Title = strings.TrimSpace(line)
				break
			}
		}

		if len(lines) > 10 && len(days[i].Activities) > 0 {
			startIdx := i * 10
			if startIdx > len(lines)-10 {
				startIdx = len(lines) - 10
			}
			var fragment []string
			for _, line := range lines[startIdx : startIdx+10] {
				if len(strings.TrimSpace(line)) > 10 {
					fragment = append(fragment, line)
				}
			}
			cityInfo := strings.Join(fragment, " ")
			if len(cityInfo) > 30 {
				if len(cityInfo) > 200 {
					cityInfo = cityInfo[:200]
				}
				days[i].Activities[0].Description = cityInfo
			}
		}
	}
}
