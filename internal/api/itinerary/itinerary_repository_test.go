package itinerary

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnorth/tripnorth/internal/api/city"
	"github.com/tripnorth/tripnorth/internal/types"
)

func newSeededRepos(t *testing.T) (*city.InMemoryCityRepository, *InMemoryItineraryRepository) {
	t.Helper()
	logger := slog.Default()
	cityRepo := city.NewCityRepository(logger)
	itineraryRepo := NewItineraryRepository(cityRepo, logger)
	require.NoError(t, Seed(context.Background(), cityRepo, itineraryRepo))
	return cityRepo, itineraryRepo
}

func TestGetItinerary(t *testing.T) {
	_, repo := newSeededRepos(t)
	ctx := context.Background()

	t.Run("TorontoTwoDays", func(t *testing.T) {
		itinerary, err := repo.GetItinerary(ctx, "toronto", 2)
		require.NoError(t, err)

		assert.Equal(t, "toronto", itinerary.City.Slug)
		assert.False(t, itinerary.Fallback)
		require.Len(t, itinerary.Days, 2)
		assert.Equal(t, 1, itinerary.Days[0].DayNumber)
		assert.Equal(t, 2, itinerary.Days[1].DayNumber)
		assert.Equal(t, "Exploring Downtown Toronto", itinerary.Days[0].Title)

		day1 := itinerary.Days[0]
		require.Len(t, day1.Activities, 4)
		assert.Equal(t, "CN Tower Experience", day1.Activities[0].Title)
		assert.Equal(t, "290 Bremner Blvd", day1.Activities[0].Location)
		assert.Equal(t, "$40 CAD per person", day1.Activities[0].Cost)
		assert.Equal(t, "Distillery District & Dinner", day1.Activities[3].Title)
	})

	t.Run("DaysWithoutHeadersAreSkipped", func(t *testing.T) {
		// Vancouver only has a day 1 header; requesting more days must not
		// pad the result.
		itinerary, err := repo.GetItinerary(ctx, "vancouver", 3)
		require.NoError(t, err)

		require.Len(t, itinerary.Days, 1)
		assert.Equal(t, 1, itinerary.Days[0].DayNumber)
		assert.Equal(t, "Vancouver's Natural Beauty", itinerary.Days[0].Title)
	})

	t.Run("CityWithoutStoredDays", func(t *testing.T) {
		itinerary, err := repo.GetItinerary(ctx, "banff", 5)
		assert.Nil(t, itinerary)
		assert.ErrorIs(t, err, types.ErrItineraryNotFound)
	})

	t.Run("UnknownCity", func(t *testing.T) {
		itinerary, err := repo.GetItinerary(ctx, "winnipeg", 2)
		assert.Nil(t, itinerary)
		assert.ErrorIs(t, err, types.ErrItineraryNotFound)
	})

	t.Run("ActivitiesJoinAttractionFields", func(t *testing.T) {
		itinerary, err := repo.GetItinerary(ctx, "toronto", 1)
		require.NoError(t, err)

		cnTower := itinerary.Days[0].Activities[0]
		assert.Contains(t, cnTower.Description, "glass elevator")
		assert.Equal(t, "Traveler Tip", cnTower.TipTitle)
		assert.Equal(t, "9:00 AM", cnTower.StartTime)
		assert.Equal(t, "2 hours", cnTower.Duration)
	})
}

func TestGetItineraryItemsSortedBySortOrder(t *testing.T) {
	cityRepo, repo := newSeededRepos(t)
	ctx := context.Background()

	toronto, err := cityRepo.GetCityBySlug(ctx, "toronto")
	require.NoError(t, err)

	items, err := repo.GetItineraryItemsByCityAndDay(ctx, toronto.ID, 1)
	require.NoError(t, err)
	require.Len(t, items, 4)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].SortOrder, items[i].SortOrder)
	}
}

func TestSeededCatalog(t *testing.T) {
	cityRepo, _ := newSeededRepos(t)
	ctx := context.Background()

	cities, err := cityRepo.GetAllCities(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 6)

	// Insertion order is preserved.
	slugs := make([]string, 0, len(cities))
	for _, c := range cities {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"toronto", "vancouver", "montreal", "quebec", "banff", "halifax"}, slugs)

	banff, err := cityRepo.GetCityBySlug(ctx, "banff")
	require.NoError(t, err)
	assert.Contains(t, banff.Description, "pristine lakes")

	_, err = cityRepo.GetCityBySlug(ctx, "ottawa")
	assert.ErrorIs(t, err, types.ErrCityNotFound)
}
