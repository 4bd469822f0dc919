package analyzer

import (
	"errors"
	"fmt"

	"wastewise/internal/models"
)

const (
	highAverageWaste = 30
	peakDayWaste     = 50
)

// Suggest derives advice from the history. Rules are evaluated in a fixed
// order and each one that holds appends a suggestion: a warning when the
// average waste is above 30g, an insight naming the peak day when it is above
// 50g, then a planning tip and a storage recommendation that are always added.
func (a *Analyzer) Suggest(history []models.DailyRecord) ([]models.Suggestion, error) {
	if len(history) == 0 {
		a.metrics.RecordInsufficientData("suggest")
		return nil, fmt.Errorf("suggest: empty history: %w", ErrInsufficientData)
	}

	var total float64
	peak := history[0]
	for _, day := range history {
		total += day.WasteOrZero()
		// strictly greater keeps the first maximum
		if day.WasteOrZero() > peak.WasteOrZero() {
			peak = day
		}
	}
	avgWaste := total / float64(len(history))

	suggestions := make([]models.Suggestion, 0, 4)
	if avgWaste > highAverageWaste {
		suggestions = append(suggestions, models.Suggestion{
			Type:     models.SuggestionWarning,
			Title:    "High Waste Detected",
			Message:  "Your average waste is above recommended levels. Consider reducing portion sizes.",
			Priority: models.PriorityHigh,
		})
	}
	if peak.WasteOrZero() > peakDayWaste {
		suggestions = append(suggestions, models.Suggestion{
			Type:     models.SuggestionInsight,
			Title:    fmt.Sprintf("%s Peak Waste", peak.Date),
			Message:  fmt.Sprintf("%s shows highest waste. Review meal planning for this day.", peak.Date),
			Priority: models.PriorityMedium,
		})
	}
	suggestions = append(suggestions,
		models.Suggestion{
			Type:     models.SuggestionTip,
			Title:    "Smart Planning",
			Message:  "Based on your patterns, try cooking 10% less on weekends to reduce waste.",
			Priority: models.PriorityLow,
		},
		models.Suggestion{
			Type:     models.SuggestionRecommendation,
			Title:    "Storage Optimization",
			Message:  "Proper storage could reduce waste by up to 20%. Consider airtight containers.",
			Priority: models.PriorityMedium,
		},
	)

	a.metrics.RecordSuggestions(suggestions)
	return suggestions, nil
}

// SuggestOrDefault substitutes DefaultSuggestions when the history is
// insufficient. Any other error is returned as is.
func (a *Analyzer) SuggestOrDefault(history []models.DailyRecord) ([]models.Suggestion, error) {
	suggestions, err := a.Suggest(history)
	if errors.Is(err, ErrInsufficientData) {
		a.logger.Info("using default suggestions", "error", err)
		return DefaultSuggestions(), nil
	}
	return suggestions, err
}

// DefaultSuggestions is shown when there is no history to analyze.
func DefaultSuggestions() []models.Suggestion {
	return []models.Suggestion{
		{
			Type:     models.SuggestionTip,
			Title:    "Meal Prep",
			Message:  "Plan meals for the week to reduce impulse buying and waste.",
			Priority: models.PriorityLow,
		},
		{
			Type:     models.SuggestionRecommendation,
			Title:    "Leftover Recipes",
			Message:  "Transform leftovers into new meals to maximize food usage.",
			Priority: models.PriorityMedium,
		},
	}
}
