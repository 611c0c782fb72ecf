package city

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tripnorth/tripnorth/config"
	generativeAI "github.com/tripnorth/tripnorth/internal/api/generative_ai"
	"github.com/tripnorth/tripnorth/internal/types"
)

// MockCompletionClient is a mock implementation of the CompletionClient interface
type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, req generativeAI.CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

var _ generativeAI.CompletionClient = (*MockCompletionClient)(nil)

var testSearchCfg = config.StageConfig{Temperature: 0.3, MaxTokens: 500}

func newCatalogRepo(t *testing.T) *InMemoryCityRepository {
	t.Helper()
	repo := NewCityRepository(slog.Default())
	ctx := context.Background()
	seed := []types.InsertCity{
		{Name: "Toronto", Slug: "toronto", Description: "Canada's largest city with a vibrant arts scene"},
		{Name: "Vancouver", Slug: "vancouver", Description: "Coastal city surrounded by mountains and ocean"},
		{Name: "Banff", Slug: "banff", Description: "Mountain town with pristine lakes and alpine scenery"},
	}
	for _, c := range seed {
		_, err := repo.CreateCity(ctx, c)
		require.NoError(t, err)
	}
	return repo
}

func slugsOf(cities []types.City) []string {
	slugs := make([]string, 0, len(cities))
	for _, c := range cities {
		slugs = append(slugs, c.Slug)
	}
	return slugs
}

func TestSearchCities(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyQueryReturnsFullCatalog", func(t *testing.T) {
		aiClient := new(MockCompletionClient)
		service := NewCityService(newCatalogRepo(t), aiClient, testSearchCfg, slog.Default())

		result, err := service.SearchCities(ctx, "   ")

		require.NoError(t, err)
		assert.Equal(t, []string{"toronto", "vancouver", "banff"}, slugsOf(result))
		aiClient.AssertNotCalled(t, "Complete")
	})

	t.Run("AIMatchFiltersBySlug", func(t *testing.T) {
		aiClient := new(MockCompletionClient)
		aiClient.On("Complete", mock.Anything, mock.MatchedBy(func(req generativeAI.CompletionRequest) bool {
			return req.JSONMode && req.MaxTokens == 500
		})).Return(`{"cities": ["banff"]}`, nil).Once()
		service := NewCityService(newCatalogRepo(t), aiClient, testSearchCfg, slog.Default())

		result, err := service.SearchCities(ctx, "mountain lakes")

		require.NoError(t, err)
		assert.Equal(t, []string{"banff"}, slugsOf(result))
		aiClient.AssertExpectations(t)
	})

	t.Run("BareArrayResponseAccepted", func(t *testing.T) {
		aiClient := new(MockCompletionClient)
		aiClient.On("Complete", mock.Anything, mock.Anything).
			Return("```json\n[\"toronto\", \"vancouver\"]\n```", nil).Once()
		service := NewCityService(newCatalogRepo(t), aiClient, testSearchCfg, slog.Default())

		result, err := service.SearchCities(ctx, "big cities")

		require.NoError(t, err)
		assert.Equal(t, []string{"toronto", "vancouver"}, slugsOf(result))
	})

	t.Run("AIErrorFallsBackToSubstring", func(t *testing.T) {
		aiClient := new(MockCompletionClient)
		aiClient.On("Complete", mock.Anything, mock.Anything).
			Return("", errors.New("provider unavailable")).Once()
		service := NewCityService(newCatalogRepo(t), aiClient, testSearchCfg, slog.Default())

		result, err := service.SearchCities(ctx, "mountain")

		require.NoError(t, err)
		assert.Equal(t, []string{"vancouver", "banff"}, slugsOf(result))
	})

	t.Run("GarbageResponseFallsBackToSubstring", func(t *testing.T) {
		aiClient := new(MockCompletionClient)
		aiClient.On("Complete", mock.Anything, mock.Anything).
			Return("I think Banff would be lovely this time of year", nil).Once()
		service := NewCityService(newCatalogRepo(t), aiClient, testSearchCfg, slog.Default())

		result, err := service.SearchCities(ctx, "Toronto")

		require.NoError(t, err)
		assert.Equal(t, []string{"toronto"}, slugsOf(result))
	})

	t.Run("EmptyAIMatchFallsBackToSubstring", func(t *testing.T) {
		aiClient := new(MockCompletionClient)
		aiClient.On("Complete", mock.Anything, mock.Anything).
			Return(`{"cities": []}`, nil).Once()
		service := NewCityService(newCatalogRepo(t), aiClient, testSearchCfg, slog.Default())

		result, err := service.SearchCities(ctx, "coastal")

		require.NoError(t, err)
		assert.Equal(t, []string{"vancouver"}, slugsOf(result))
	})

	t.Run("UnknownSlugsIgnored", func(t *testing.T) {
		aiClient := new(MockCompletionClient)
		aiClient.On("Complete", mock.Anything, mock.Anything).
			Return(`{"cities": ["banff", "whistler"]}`, nil).Once()
		service := NewCityService(newCatalogRepo(t), aiClient, testSearchCfg, slog.Default())

		result, err := service.SearchCities(ctx, "ski towns")

		require.NoError(t, err)
		assert.Equal(t, []string{"banff"}, slugsOf(result))
	})

	t.Run("NoMatchesAnywhereReturnsEmpty", func(t *testing.T) {
		aiClient := new(MockCompletionClient)
		aiClient.On("Complete", mock.Anything, mock.Anything).
			Return(`{"cities": []}`, nil).Once()
		service := NewCityService(newCatalogRepo(t), aiClient, testSearchCfg, slog.Default())

		result, err := service.SearchCities(ctx, "tropical beaches")

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestGetCityBySlug(t *testing.T) {
	ctx := context.Background()
	service := NewCityService(newCatalogRepo(t), new(MockCompletionClient), testSearchCfg, slog.Default())

	t.Run("Found", func(t *testing.T) {
		c, err := service.GetCityBySlug(ctx, "vancouver")
		require.NoError(t, err)
		assert.Equal(t, "Vancouver", c.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := service.GetCityBySlug(ctx, "whistler")
		assert.ErrorIs(t, err, types.ErrCityNotFound)
	})
}

func TestCityRepositoryByID(t *testing.T) {
	ctx := context.Background()
	repo := newCatalogRepo(t)

	c, err := repo.GetCityByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "toronto", c.Slug)

	_, err = repo.GetCityByID(ctx, 99)
	assert.ErrorIs(t, err, types.ErrCityNotFound)
}
