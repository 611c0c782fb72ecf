package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
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

func newTestGenerator(client generativeAI.CompletionClient) *GeneratorImpl {
	narrative := config.StageConfig{Temperature: 0.7, MaxTokens: 3000}
	structuring := config.StageConfig{Temperature: 0.2, MaxTokens: 4000}
	return NewGenerator(client, narrative, structuring, slog.Default())
}

// structuredResponse builds a stage-2 JSON body with the given day count.
func structuredResponse(t *testing.T, dayCount int) string {
	t.Helper()
	days := make([]types.ItineraryDay, 0, dayCount)
	for d := 1; d <= dayCount; d++ {
		activities := make([]types.ItineraryActivity, 0, 3)
		for a := 0; a < 3; a++ {
			activities = append(activities, types.ItineraryActivity{
				ID:          (d-1)*3 + a + 1,
				StartTime:   "9:00 AM",
				EndTime:     "12:00 PM",
				Duration:    "3 hours",
				Title:       fmt.Sprintf("Morning: Stop %d", a+1),
				Description: "A detailed description of the activity.",
				Location:    "123 Rue Saint-Paul",
				Cost:        "$20-25 CAD per person",
			})
		}
		days = append(days, types.ItineraryDay{
			DayNumber:  d,
			Title:      fmt.Sprintf("Day %d theme", d),
			Activities: activities,
		})
	}
	payload, err := json.Marshal(map[string]interface{}{"days": days})
	require.NoError(t, err)
	return string(payload)
}

func isNarrativeStage(req generativeAI.CompletionRequest) bool {
	return !req.JSONMode && req.SystemPrompt != ""
}

func isStructuringStage(req generativeAI.CompletionRequest) bool {
	return req.JSONMode && req.SystemPrompt == ""
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("TwoStageSuccess", func(t *testing.T) {
		client := new(MockCompletionClient)
		client.On("Complete", ctx, mock.MatchedBy(isNarrativeStage)).
			Return("Day 1: A wonderful tour of Montreal...", nil).Once()
		client.On("Complete", ctx, mock.MatchedBy(isStructuringStage)).
			Return(structuredResponse(t, 3), nil).Once()

		days, err := newTestGenerator(client).Generate(ctx, "Montreal", "European charm", 3)

		require.NoError(t, err)
		require.Len(t, days, 3)
		for i, day := range days {
			assert.Equal(t, i+1, day.DayNumber)
			assert.Len(t, day.Activities, 3)
		}
		client.AssertExpectations(t)
	})

	t.Run("ExcessDaysTruncated", func(t *testing.T) {
		client := new(MockCompletionClient)
		client.On("Complete", ctx, mock.MatchedBy(isNarrativeStage)).Return("narrative", nil).Once()
		client.On("Complete", ctx, mock.MatchedBy(isStructuringStage)).
			Return(structuredResponse(t, 5), nil).Once()

		days, err := newTestGenerator(client).Generate(ctx, "Montreal", "desc", 2)

		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, 1, days[0].DayNumber)
		assert.Equal(t, 2, days[1].DayNumber)
	})

	t.Run("MissingDaysPadded", func(t *testing.T) {
		client := new(MockCompletionClient)
		client.On("Complete", ctx, mock.MatchedBy(isNarrativeStage)).Return("narrative", nil).Once()
		client.On("Complete", ctx, mock.MatchedBy(isStructuringStage)).
			Return(structuredResponse(t, 2), nil).Once()

		days, err := newTestGenerator(client).Generate(ctx, "Halifax", "maritime charm", 4)

		require.NoError(t, err)
		require.Len(t, days, 4)
		// Padded tail is synthetic but schema-complete.
		for _, day := range days[2:] {
			assert.Len(t, day.Activities, 3)
			assert.Contains(t, day.Title, "Halifax")
			for _, activity := range day.Activities {
				assert.NotEmpty(t, activity.Cost)
				assert.NotEmpty(t, activity.Location)
			}
		}
		assert.Equal(t, []int{1, 2, 3, 4}, dayNumbers(days))
	})

	t.Run("MalformedStructuredJSON", func(t *testing.T) {
		client := new(MockCompletionClient)
		client.On("Complete", ctx, mock.MatchedBy(isNarrativeStage)).Return("short", nil).Once()
		client.On("Complete", ctx, mock.MatchedBy(isStructuringStage)).
			Return("this is { not json", nil).Once()

		days, err := newTestGenerator(client).Generate(ctx, "Quebec City", "historic", 3)

		require.NoError(t, err)
		require.Len(t, days, 3)
		for _, day := range days {
			require.Len(t, day.Activities, 3)
			for _, activity := range day.Activities {
				assert.NotEmpty(t, activity.Cost)
				assert.NotEmpty(t, activity.Location)
				assert.NotEqual(t, "Free", activity.Cost)
				assert.NotEqual(t, "Varies", activity.Cost)
				assert.NotEmpty(t, activity.TipDescription)
			}
		}
	})

	t.Run("StructuringCallFailureAbsorbed", func(t *testing.T) {
		client := new(MockCompletionClient)
		client.On("Complete", ctx, mock.MatchedBy(isNarrativeStage)).Return("narrative", nil).Once()
		client.On("Complete", ctx, mock.MatchedBy(isStructuringStage)).
			Return("", errors.New("model overloaded")).Once()

		days, err := newTestGenerator(client).Generate(ctx, "Banff", "mountains", 2)

		require.NoError(t, err)
		assert.Len(t, days, 2)
	})

	t.Run("NarrativeQuotaErrorPropagates", func(t *testing.T) {
		client := new(MockCompletionClient)
		client.On("Complete", ctx, mock.MatchedBy(isNarrativeStage)).
			Return("", errors.New("You exceeded your current quota, please check your plan")).Once()

		days, err := newTestGenerator(client).Generate(ctx, "Banff", "mountains", 5)

		assert.Nil(t, days)
		assert.ErrorIs(t, err, types.ErrQuotaExceeded)
	})

	t.Run("NarrativeRateLimitKindPropagatesAsQuota", func(t *testing.T) {
		client := new(MockCompletionClient)
		client.On("Complete", ctx, mock.MatchedBy(isNarrativeStage)).
			Return("", &generativeAI.CompletionError{
				Kind:       generativeAI.KindRateLimit,
				StatusCode: 429,
				Message:    "resource exhausted",
			}).Once()

		_, err := newTestGenerator(client).Generate(ctx, "Banff", "mountains", 5)

		assert.ErrorIs(t, err, types.ErrQuotaExceeded)
	})

	t.Run("NarrativeGenericErrorPropagates", func(t *testing.T) {
		client := new(MockCompletionClient)
		client.On("Complete", ctx, mock.MatchedBy(isNarrativeStage)).
			Return("", errors.New("connection reset by peer")).Once()

		_, err := newTestGenerator(client).Generate(ctx, "Banff", "mountains", 5)

		assert.ErrorIs(t, err, types.ErrGenerationFailed)
		assert.NotErrorIs(t, err, types.ErrQuotaExceeded)
	})

	t.Run("EnrichmentLiftsDayTitlesFromNarrative", func(t *testing.T) {
		var narrative strings.Builder
		narrative.WriteString("Day 1: Old Town Wanderings\n")
		for i := 0; i < 20; i++ {
			narrative.WriteString("A line describing the charming cobblestone streets of the old town.\n")
		}

		client := new(MockCompletionClient)
		client.On("Complete", ctx, mock.MatchedBy(isNarrativeStage)).Return(narrative.String(), nil).Once()
		client.On("Complete", ctx, mock.MatchedBy(isStructuringStage)).Return("not json at all", nil).Once()

		days, err := newTestGenerator(client).Generate(ctx, "Quebec City", "historic", 2)

		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, "Day 1: Old Town Wanderings", days[0].Title)
	})
}

func dayNumbers(days []types.ItineraryDay) []int {
	out := make([]int, 0, len(days))
	for _, d := range days {
		out = append(out, d.DayNumber)
	}
	return out
}
