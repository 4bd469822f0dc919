package models

import "time"

// DailyRecord is one day of observed kitchen activity. Quantities are grams.
// Waste may be absent, in which case it counts as zero.
type DailyRecord struct {
	ID        uint      `gorm:"primary_key" json:"id,omitempty"`
	Date      string    `gorm:"not null;index" json:"date" validate:"required"`
	Cooked    float64   `json:"cooked" validate:"gte=0"`
	Eaten     float64   `json:"eaten" validate:"gte=0"`
	Leftover  float64   `json:"leftover" validate:"gte=0"`
	Waste     *float64  `json:"waste,omitempty" validate:"omitempty,gte=0"`
	CreatedAt time.Time `json:"-"`
}

// TableName sets the table name for DailyRecord
func (DailyRecord) TableName() string {
	return "weekly_food_data"
}

// WasteOrZero returns the recorded waste, or zero when none was logged.
func (r DailyRecord) WasteOrZero() float64 {
	if r.Waste == nil {
		return 0
	}
	return *r.Waste
}

// Grams returns a pointer to v, for filling optional quantities.
func Grams(v float64) *float64 {
	return &v
}

// MonthlyStats is the single-row monthly aggregate shown on the dashboard.
type MonthlyStats struct {
	ID             uint    `gorm:"primary_key" json:"-"`
	TotalCooked    float64 `json:"total_cooked"`
	TotalEaten     float64 `json:"total_eaten"`
	TotalLeftover  float64 `json:"total_leftover"`
	TotalWaste     float64 `json:"total_waste"`
	Efficiency     float64 `json:"efficiency"`
	MostWastedDay  string  `json:"most_wasted_day"`
	LeastWastedDay string  `json:"least_wasted_day"`
}

// TableName sets the table name for MonthlyStats
func (MonthlyStats) TableName() string {
	return "monthly_stats"
}

// FoodCategory is one slice of the wasted-by-category chart.
type FoodCategory struct {
	ID       uint    `gorm:"primary_key" json:"-"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Color    string  `json:"color"`
}

// TableName sets the table name for FoodCategory
func (FoodCategory) TableName() string {
	return "food_categories"
}
