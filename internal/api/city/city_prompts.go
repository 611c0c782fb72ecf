package city

import "fmt"

func getCitySearchPrompt(query, serializedCities string) string {
	return fmt.Sprintf(`You are a travel assistant helping to find Canadian cities that match a user's search query.

The user is searching for: "%s"

Here is the list of available Canadian cities with their details:
%s

Return ONLY a JSON object with a "cities" key containing the array of city slugs that best match the user's query. Consider city names, descriptions, and popular landmarks or features. Return only the slugs, nothing else.

For example, if the result is Toronto and Vancouver, return: {"cities": ["toronto", "vancouver"]}`, query, serializedCities)
}
