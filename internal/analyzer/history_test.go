package analyzer

import (
	"testing"

	"wastewise/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealBreakdown(t *testing.T) {
	tests := []struct {
		name string
		day  models.DailyRecord
		want [3]models.MealRecord
	}{
		{
			name: "split 30/40/30",
			day:  models.DailyRecord{Date: "Mon", Cooked: 200, Eaten: 170, Leftover: 20, Waste: models.Grams(7)},
			want: [3]models.MealRecord{
				{Date: "Mon", MealType: models.MealBreakfast, Cooked: 60, Eaten: 51, Leftover: 6, Waste: 2},
				{Date: "Mon", MealType: models.MealLunch, Cooked: 80, Eaten: 68, Leftover: 8, Waste: 3},
				{Date: "Mon", MealType: models.MealDinner, Cooked: 60, Eaten: 51, Leftover: 6, Waste: 2},
			},
		},
		{
			name: "halves round up",
			day:  models.DailyRecord{Date: "Tue", Cooked: 5, Eaten: 5, Leftover: 0, Waste: models.Grams(5)},
			want: [3]models.MealRecord{
				{Date: "Tue", MealType: models.MealBreakfast, Cooked: 2, Eaten: 2, Leftover: 0, Waste: 2},
				{Date: "Tue", MealType: models.MealLunch, Cooked: 2, Eaten: 2, Leftover: 0, Waste: 2},
				{Date: "Tue", MealType: models.MealDinner, Cooked: 2, Eaten: 2, Leftover: 0, Waste: 2},
			},
		},
		{
			name: "missing waste is zero",
			day:  models.DailyRecord{Date: "Wed", Cooked: 100, Eaten: 90, Leftover: 10},
			want: [3]models.MealRecord{
				{Date: "Wed", MealType: models.MealBreakfast, Cooked: 30, Eaten: 27, Leftover: 3, Waste: 0},
				{Date: "Wed", MealType: models.MealLunch, Cooked: 40, Eaten: 36, Leftover: 4, Waste: 0},
				{Date: "Wed", MealType: models.MealDinner, Cooked: 30, Eaten: 27, Leftover: 3, Waste: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MealBreakdown([]models.DailyRecord{tt.day})
			require.Len(t, got, 3)
			assert.Equal(t, tt.want[:], got)
		})
	}
}

func TestMealBreakdown_KeepsDayOrder(t *testing.T) {
	got := MealBreakdown(week())

	require.Len(t, got, 21)
	assert.Equal(t, "Mon", got[0].Date)
	assert.Equal(t, models.MealDinner, got[2].MealType)
	assert.Equal(t, "Tue", got[3].Date)
	assert.Equal(t, "Sun", got[20].Date)
}

func TestMealBreakdown_Empty(t *testing.T) {
	got := MealBreakdown(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
