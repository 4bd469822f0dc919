package analyzer

import (
	"errors"
	"fmt"
	"math"

	"wastewise/internal/models"
)

// Trend thresholds on avgWaste/avgCooked. Values on a threshold are stable.
const (
	IncreasingRatio = 0.15
	DecreasingRatio = 0.08
)

type averages struct {
	waste  float64
	cooked float64
	eaten  float64
}

func average(history []models.DailyRecord) averages {
	var sum averages
	for _, day := range history {
		sum.waste += day.WasteOrZero()
		sum.cooked += day.Cooked
		sum.eaten += day.Eaten
	}
	n := float64(len(history))
	return averages{
		waste:  sum.waste / n,
		cooked: sum.cooked / n,
		eaten:  sum.eaten / n,
	}
}

// ClassifyTrend maps a waste ratio to a trend label.
func ClassifyTrend(ratio float64) models.Trend {
	switch {
	case ratio > IncreasingRatio:
		return models.TrendIncreasing
	case ratio < DecreasingRatio:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

// Predict estimates tomorrow's and next week's waste from the mean of the
// history. Every record has the same weight. The estimates are perturbed by
// the analyzer's randomness source: tomorrow by [0.8, 1.2], the week by
// [0.9, 1.1] times seven.
func (a *Analyzer) Predict(history []models.DailyRecord) (models.Prediction, error) {
	if len(history) == 0 {
		a.metrics.RecordInsufficientData("predict")
		return models.Prediction{}, fmt.Errorf("predict: empty history: %w", ErrInsufficientData)
	}

	avg := average(history)
	if avg.cooked == 0 {
		a.metrics.RecordInsufficientData("predict")
		return models.Prediction{}, fmt.Errorf("predict: nothing cooked: %w", ErrInsufficientData)
	}

	ratio := avg.waste / avg.cooked
	efficiency := avg.eaten / avg.cooked * 100
	if !finite(ratio) || !finite(efficiency) || !finite(avg.waste) {
		a.metrics.RecordInsufficientData("predict")
		return models.Prediction{}, fmt.Errorf("predict: non-finite averages: %w", ErrInsufficientData)
	}

	tomorrowFactor := 0.8 + a.draw()*0.4
	weeklyFactor := 0.9 + a.draw()*0.2

	p := models.Prediction{
		TomorrowWaste: int(math.Round(avg.waste * tomorrowFactor)),
		WeeklyWaste:   int(math.Round(avg.waste * 7 * weeklyFactor)),
		WasteTrend:    ClassifyTrend(ratio),
		Efficiency:    math.Round(efficiency*10) / 10,
	}
	a.metrics.RecordPrediction(p)
	return p, nil
}

// PredictOrDefault substitutes DefaultPrediction when the history is
// insufficient. Any other error is returned as is.
func (a *Analyzer) PredictOrDefault(history []models.DailyRecord) (models.Prediction, error) {
	p, err := a.Predict(history)
	if errors.Is(err, ErrInsufficientData) {
		a.logger.Info("using default prediction", "error", err, "records", len(history))
		return DefaultPrediction(), nil
	}
	return p, err
}

// DefaultPrediction is shown when there is nothing to predict from.
func DefaultPrediction() models.Prediction {
	return models.Prediction{
		TomorrowWaste: 25,
		WeeklyWaste:   180,
		WasteTrend:    models.TrendStable,
		Efficiency:    85.5,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
