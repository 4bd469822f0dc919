package analyzer

import (
	"testing"

	"wastewise/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestionTypes(suggestions []models.Suggestion) []models.SuggestionType {
	types := make([]models.SuggestionType, 0, len(suggestions))
	for _, s := range suggestions {
		types = append(types, s.Type)
	}
	return types
}

func TestSuggestLowWasteOnlyUnconditional(t *testing.T) {
	suggestions, err := New().Suggest(week())
	require.NoError(t, err)

	assert.Equal(t, []models.SuggestionType{
		models.SuggestionTip,
		models.SuggestionRecommendation,
	}, suggestionTypes(suggestions))
	assert.Equal(t, "Smart Planning", suggestions[0].Title)
	assert.Equal(t, models.PriorityLow, suggestions[0].Priority)
	assert.Equal(t, "Storage Optimization", suggestions[1].Title)
	assert.Equal(t, models.PriorityMedium, suggestions[1].Priority)
}

func TestSuggestHighWasteWithPeak(t *testing.T) {
	history := []models.DailyRecord{
		day("Mon", 200, 140, 60, 30),
		day("Tue", 200, 150, 50, 40),
		day("Wed", 200, 130, 70, 55),
		day("Thu", 200, 160, 40, 30),
		day("Fri", 200, 160, 40, 25),
		day("Sat", 200, 160, 40, 35),
		day("Sun", 200, 150, 50, 40),
	}

	suggestions, err := New().Suggest(history)
	require.NoError(t, err)

	require.Len(t, suggestions, 4)
	assert.Equal(t, []models.SuggestionType{
		models.SuggestionWarning,
		models.SuggestionInsight,
		models.SuggestionTip,
		models.SuggestionRecommendation,
	}, suggestionTypes(suggestions))
	assert.Equal(t, models.PriorityHigh, suggestions[0].Priority)
	assert.Equal(t, "Wed Peak Waste", suggestions[1].Title)
	assert.Equal(t, "Wed shows highest waste. Review meal planning for this day.", suggestions[1].Message)
}

func TestSuggestPeakWithoutHighAverage(t *testing.T) {
	history := uniformWeek(200, 10)
	history[4] = day("Fri", 200, 120, 80, 60)

	suggestions, err := New().Suggest(history)
	require.NoError(t, err)

	assert.Equal(t, []models.SuggestionType{
		models.SuggestionInsight,
		models.SuggestionTip,
		models.SuggestionRecommendation,
	}, suggestionTypes(suggestions))
	assert.Equal(t, "Fri Peak Waste", suggestions[0].Title)
}

func TestSuggestPeakTieKeepsFirst(t *testing.T) {
	history := uniformWeek(200, 10)
	history[1] = day("Tue", 200, 120, 80, 60)
	history[5] = day("Sat", 200, 120, 80, 60)

	suggestions, err := New().Suggest(history)
	require.NoError(t, err)

	require.Equal(t, models.SuggestionInsight, suggestions[0].Type)
	assert.Equal(t, "Tue Peak Waste", suggestions[0].Title)
}

func TestSuggestAverageExactlyAtThreshold(t *testing.T) {
	suggestions, err := New().Suggest(uniformWeek(200, 30))
	require.NoError(t, err)

	assert.Len(t, suggestions, 2)
}

func TestSuggestInsufficientData(t *testing.T) {
	a := New()

	_, err := a.Suggest(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)

	suggestions, err := a.SuggestOrDefault(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSuggestions(), suggestions)
	assert.Equal(t, "Meal Prep", suggestions[0].Title)
	assert.Equal(t, "Leftover Recipes", suggestions[1].Title)
}

func TestSuggestSingleRecordWithoutWaste(t *testing.T) {
	suggestions, err := New().Suggest([]models.DailyRecord{{Date: "Mon", Cooked: 100, Eaten: 100}})
	require.NoError(t, err)

	assert.Len(t, suggestions, 2)
}
