package analyzer

import (
	"math"

	"wastewise/internal/models"
)

// mealShares splits a day 30/40/30 across breakfast, lunch and dinner
var mealShares = []struct {
	meal  models.MealType
	share float64
}{
	{models.MealBreakfast, 0.3},
	{models.MealLunch, 0.4},
	{models.MealDinner, 0.3},
}

// MealBreakdown expands every day into three meal rows, in history order.
// Each quantity is rounded half up to whole grams; missing waste counts as 0.
func MealBreakdown(history []models.DailyRecord) []models.MealRecord {
	rows := make([]models.MealRecord, 0, len(history)*len(mealShares))
	for _, day := range history {
		for _, m := range mealShares {
			rows = append(rows, models.MealRecord{
				Date:     day.Date,
				MealType: m.meal,
				Cooked:   roundHalfUp(day.Cooked * m.share),
				Eaten:    roundHalfUp(day.Eaten * m.share),
				Leftover: roundHalfUp(day.Leftover * m.share),
				Waste:    roundHalfUp(day.WasteOrZero() * m.share),
			})
		}
	}
	return rows
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
