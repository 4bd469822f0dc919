package analyzer

import (
	"fmt"
	"math"

	"wastewise/internal/models"
)

// Summarize totals a history window for the dashboard. Ties for most and
// least wasted day go to the earliest record.
func (a *Analyzer) Summarize(history []models.DailyRecord) (models.DashboardSummary, error) {
	if len(history) == 0 {
		a.metrics.RecordInsufficientData("summarize")
		return models.DashboardSummary{}, fmt.Errorf("summarize: empty history: %w", ErrInsufficientData)
	}

	summary := models.DashboardSummary{Days: len(history)}
	most, least := history[0], history[0]
	for _, day := range history {
		summary.TotalCooked += day.Cooked
		summary.TotalEaten += day.Eaten
		summary.TotalLeftover += day.Leftover
		summary.TotalWaste += day.WasteOrZero()
		if day.WasteOrZero() > most.WasteOrZero() {
			most = day
		}
		if day.WasteOrZero() < least.WasteOrZero() {
			least = day
		}
	}
	summary.MostWastedDay = most.Date
	summary.LeastWastedDay = least.Date
	if summary.TotalCooked > 0 {
		summary.Efficiency = math.Round(summary.TotalEaten/summary.TotalCooked*1000) / 10
	}
	return summary, nil
}
