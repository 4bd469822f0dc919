package models

import "fmt"

// Trend describes the direction of the waste ratio
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// SuggestionType represents the kind of advice a suggestion carries
type SuggestionType string

const (
	SuggestionWarning        SuggestionType = "warning"
	SuggestionInsight        SuggestionType = "insight"
	SuggestionTip            SuggestionType = "tip"
	SuggestionRecommendation SuggestionType = "recommendation"
)

// Priority represents how urgently a suggestion should be shown
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Prediction is the output of one waste prediction. It is recomputed on every
// call and never stored.
type Prediction struct {
	TomorrowWaste int     `json:"tomorrowWaste"`
	WeeklyWaste   int     `json:"weeklyWaste"`
	WasteTrend    Trend   `json:"wasteTrend"`
	Efficiency    float64 `json:"efficiency"`
}

// EfficiencyLabel formats the efficiency percentage with one decimal.
func (p Prediction) EfficiencyLabel() string {
	return fmt.Sprintf("%.1f", p.Efficiency)
}

// Suggestion is a human-readable piece of advice derived from history.
type Suggestion struct {
	Type     SuggestionType `json:"type"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Priority Priority       `json:"priority"`
}

// DashboardSummary aggregates a history window for the dashboard cards.
type DashboardSummary struct {
	Days           int     `json:"days"`
	TotalCooked    float64 `json:"total_cooked"`
	TotalEaten     float64 `json:"total_eaten"`
	TotalLeftover  float64 `json:"total_leftover"`
	TotalWaste     float64 `json:"total_waste"`
	Efficiency     float64 `json:"efficiency"`
	MostWastedDay  string  `json:"most_wasted_day"`
	LeastWastedDay string  `json:"least_wasted_day"`
}

// MealType names one of the three meals a day is split into
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
)

// MealRecord is one meal's share of a day's record, in whole grams.
type MealRecord struct {
	Date     string   `json:"date"`
	MealType MealType `json:"mealType"`
	Cooked   int      `json:"cooked"`
	Eaten    int      `json:"eaten"`
	Leftover int      `json:"leftover"`
	Waste    int      `json:"waste"`
}
