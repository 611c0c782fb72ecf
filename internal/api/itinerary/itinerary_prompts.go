package itinerary

import "fmt"

func getNarrativeSystemPrompt(cityName, cityDescription string, days int) string {
	return fmt.Sprintf(`You are an expert Canadian travel guide with detailed knowledge of %[1]s, Canada.
Create a detailed %[2]d-day itinerary for %[1]s, focusing exclusively on authentic Canadian experiences with HIGHLY SPECIFIC details. The itinerary should include:

For each day:
1. A catchy title for the day's theme that captures the essence of Canadian culture or local highlights
2. Exactly three activities divided into morning, afternoon, and evening
3. For each activity provide:
   - A title prefixed with "Morning:", "Afternoon:", or "Evening:" that's specific and descriptive
   - Realistic start and end times considering Canadian business hours
   - Duration that makes sense for the activity
   - HIGHLY DETAILED description (at least 60 words) of the activity highlighting Canadian significance
   - SPECIFIC location with ACTUAL street addresses, building names, and neighborhoods in %[1]s
   - PRECISE cost in CAD with realistic price ranges (e.g., "$25-30 CAD per person" not just "Varies")
   - A detailed and helpful traveler tip related to that specific activity, location, or Canadian cultural norms

Use this city description for context: %[3]s

Important guidelines:
- Make ALL recommendations realistic, specific to %[1]s, and focus on Canadian culture, nature, and local highlights
- Include a mix of popular attractions and hidden gems only locals would know
- Recommend authentic Canadian cuisine and local dining experiences with SPECIFIC restaurant names and dishes
- Include seasonal activities appropriate for the time of year
- Ensure activities logically flow and consider travel time between locations using local transit options
- Highlight Canadian cultural nuances, etiquette, and local customs where relevant
- For multi-day itineraries, ensure each day has a distinct theme or focus area within %[1]s
- NEVER use generic descriptions like "downtown area" or "central district" - always provide specific street names, intersections, or landmarks
- NEVER use generic costs like "Free" or "Varies" without explanation - always provide specific price ranges or explain what affects the cost

Your itinerary should feel like it was created by a local Canadian who deeply understands the culture and attractions of %[1]s, with insider knowledge that tourists wouldn't typically have.`, cityName, days, cityDescription)
}

func getNarrativeUserPrompt(cityName string, days int) string {
	return fmt.Sprintf(`Please create a highly detailed %[2]d-day travel itinerary for %[1]s, Canada, focusing on authentic Canadian experiences with SPECIFIC details for all activities.

I need a comprehensive day-by-day plan that includes:
- Morning activities starting around 8-9am with EXACT addresses and locations
- Afternoon activities that showcase the best of %[1]s with SPECIFIC venue names
- Evening activities including dining at LOCAL Canadian restaurants with ACTUAL restaurant names
- PRECISE street addresses and locations for every attraction and activity
- DETAILED cost estimates in Canadian dollars with specific price ranges
- Local transportation options between activities with route numbers and stop names
- SPECIFIC and insightful insider tips that only locals would know

Please make this itinerary EXTREMELY detailed and specific to %[1]s. I need activities that are uniquely Canadian and highlight the city's cultural and natural attractions. Include both popular tourist destinations and authentic hidden gems that locals frequent.

Remember to provide EXACT:
- Street addresses
- Attraction and restaurant names
- Opening hours
- Cost details
- Neighborhood names
- Travel instructions between locations

I want this itinerary to feel like it was created by a local Canadian expert with deep knowledge of %[1]s.`, cityName, days)
}

func getStructuringPrompt(cityName, narrativeText string) string {
	return fmt.Sprintf(`Convert the following travel itinerary for %[1]s, Canada into a structured JSON format that follows exactly this structure:
{
  "days": [
    {
      "dayNumber": 1,
      "title": "Day's theme/title",
      "activities": [
        {
          "id": 1,
          "startTime": "9:00 AM",
          "endTime": "11:30 AM",
          "duration": "2.5 hours",
          "title": "Morning: Activity name",
          "description": "Detailed description with rich information about the activity",
          "location": "Specific address/location in %[1]s",
          "cost": "Cost in CAD with actual figures",
          "tipTitle": "Brief title for the traveler tip",
          "tipDescription": "Detailed helpful tip for travelers about this specific activity"
        },
        {
          "id": 2,
          "startTime": "12:30 PM",
          "endTime": "4:00 PM",
          "duration": "3.5 hours",
          "title": "Afternoon: Activity name",
          "description": "Detailed description",
          "location": "Specific address/location",
          "cost": "Cost in CAD",
          "tipTitle": "Afternoon Activity Tip",
          "tipDescription": "Helpful tip for travelers"
        },
        {
          "id": 3,
          "startTime": "6:00 PM",
          "endTime": "9:00 PM",
          "duration": "3 hours",
          "title": "Evening: Activity name",
          "description": "Detailed description",
          "location": "Specific address/location",
          "cost": "Cost in CAD",
          "tipTitle": "Evening Activity Tip",
          "tipDescription": "Helpful tip for travelers"
        }
      ]
    }
  ]
}

Important conversion rules:
1. Extract information from the original text to populate each field accurately
2. Keep all costs in CAD (Canadian dollars) format with SPECIFIC price ranges (e.g., "$25-30 CAD" or "$15 CAD per person")
3. Make sure every "title" field for activities begins with either "Morning:", "Afternoon:", or "Evening:" followed by specific activity name
4. Extract EXACT addresses, neighborhoods, or specific locations from the text - never use generic terms like "downtown" without specific street names
5. Each day must have exactly 3 activities (morning, afternoon, evening)
6. Day titles should be descriptive and reflect the theme of activities for that day
7. Make sure all tipTitle and tipDescription fields contain helpful, practical traveler advice that provides insider knowledge
8. Each day's activities should have sequential IDs starting from (dayNumber-1)*3+1
9. Description fields should be HIGHLY DETAILED (at least 60 words) with specific Canadian cultural significance
10. If the exact information isn't available, use reasonable inferences based on the content but always maintain SPECIFICITY with exact locations and prices
11. NEVER use generic costs like "Free" or "Varies" without explanation - always provide specific price ranges or explain what affects the cost

Original itinerary text:
%[2]s`, cityName, narrativeText)
}