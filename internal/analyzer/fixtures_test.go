package analyzer

import "wastewise/internal/models"

func day(date string, cooked, eaten, leftover, waste float64) models.DailyRecord {
	return models.DailyRecord{
		Date:     date,
		Cooked:   cooked,
		Eaten:    eaten,
		Leftover: leftover,
		Waste:    models.Grams(waste),
	}
}

// week has avgCooked=211.43 and avgEaten=183.
func week() []models.DailyRecord {
	return []models.DailyRecord{
		day("Mon", 200, 180, 20, 15),
		day("Tue", 210, 190, 20, 18),
		day("Wed", 220, 195, 25, 22),
		day("Thu", 180, 160, 20, 12),
		day("Fri", 260, 230, 30, 28),
		day("Sat", 180, 160, 20, 15),
		day("Sun", 230, 166, 64, 35),
	}
}

// uniformWeek is seven identical days, so the waste ratio is waste/cooked exactly.
func uniformWeek(cooked, waste float64) []models.DailyRecord {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	history := make([]models.DailyRecord, 0, len(days))
	for _, d := range days {
		history = append(history, day(d, cooked, cooked-waste, waste, waste))
	}
	return history
}
