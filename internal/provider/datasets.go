package provider

import "wastewise/internal/models"

// FallbackWeeklyData is the built-in week served when the source fails.
func FallbackWeeklyData() []models.DailyRecord {
	return []models.DailyRecord{
		{ID: 1, Date: "Mon", Cooked: 200, Eaten: 180, Leftover: 20, Waste: models.Grams(15)},
		{ID: 2, Date: "Tue", Cooked: 210, Eaten: 190, Leftover: 20, Waste: models.Grams(18)},
		{ID: 3, Date: "Wed", Cooked: 220, Eaten: 195, Leftover: 25, Waste: models.Grams(22)},
		{ID: 4, Date: "Thu", Cooked: 180, Eaten: 160, Leftover: 20, Waste: models.Grams(12)},
		{ID: 5, Date: "Fri", Cooked: 260, Eaten: 230, Leftover: 30, Waste: models.Grams(28)},
		{ID: 6, Date: "Sat", Cooked: 180, Eaten: 160, Leftover: 20, Waste: models.Grams(15)},
		{ID: 7, Date: "Sun", Cooked: 230, Eaten: 165, Leftover: 65, Waste: models.Grams(35)},
	}
}

// FallbackMonthlyStats is the built-in monthly aggregate.
func FallbackMonthlyStats() models.MonthlyStats {
	return models.MonthlyStats{
		TotalCooked:    1480,
		TotalEaten:     1280,
		TotalLeftover:  200,
		TotalWaste:     145,
		Efficiency:     86.5,
		MostWastedDay:  "Sunday",
		LeastWastedDay: "Thursday",
	}
}

// FallbackFoodCategories is the built-in category breakdown.
func FallbackFoodCategories() []models.FoodCategory {
	return []models.FoodCategory{
		{Category: "Vegetables", Amount: 450, Color: "#00d676"},
		{Category: "Fruits", Amount: 320, Color: "#ff6b6b"},
		{Category: "Grains", Amount: 380, Color: "#4ecdc4"},
		{Category: "Proteins", Amount: 280, Color: "#45b7d1"},
		{Category: "Dairy", Amount: 150, Color: "#f7dc6f"},
		{Category: "Others", Amount: 100, Color: "#bb8fce"},
	}
}
