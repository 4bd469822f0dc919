package provider

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"wastewise/internal/metrics"
	"wastewise/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type failingProvider struct{}

func (failingProvider) WeeklyData(context.Context) ([]models.DailyRecord, error) {
	return nil, errors.New("connection refused")
}

func (failingProvider) MonthlyStats(context.Context) (models.MonthlyStats, error) {
	return models.MonthlyStats{}, errors.New("connection refused")
}

func (failingProvider) FoodCategories(context.Context) ([]models.FoodCategory, error) {
	return nil, errors.New("connection refused")
}

func (failingProvider) InsertRecords(context.Context, ...models.DailyRecord) error {
	return errors.New("connection refused")
}

type staticProvider struct {
	records []models.DailyRecord
}

func (s staticProvider) WeeklyData(context.Context) ([]models.DailyRecord, error) {
	return s.records, nil
}

func (staticProvider) MonthlyStats(context.Context) (models.MonthlyStats, error) {
	return models.MonthlyStats{TotalCooked: 1}, nil
}

func (staticProvider) FoodCategories(context.Context) ([]models.FoodCategory, error) {
	return []models.FoodCategory{{Category: "Soup"}}, nil
}

func (staticProvider) InsertRecords(context.Context, ...models.DailyRecord) error {
	return nil
}

func TestFallbackSubstitutesOnFailure(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	collector := metrics.NewCollector()
	f := NewFallback(failingProvider{}, logger, collector)
	ctx := context.Background()

	assert.Equal(t, FallbackWeeklyData(), f.WeeklyData(ctx))
	assert.Equal(t, FallbackMonthlyStats(), f.MonthlyStats(ctx))
	assert.Equal(t, FallbackFoodCategories(), f.FoodCategories(ctx))
	assert.False(t, f.InsertRecords(ctx, models.DailyRecord{Date: "Mon"}))

	assert.Contains(t, logs.String(), "using fallback dataset")
	assert.Contains(t, logs.String(), `"dataset":"weekly"`)

	count, err := testutil.GatherAndCount(collector.Registry(), "wastewise_fallback_total")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestFallbackPassesThroughSuccess(t *testing.T) {
	records := []models.DailyRecord{{Date: "2026-10-01", Cooked: 100}}
	f := NewFallback(staticProvider{records: records}, nil, nil)
	ctx := context.Background()

	assert.Equal(t, records, f.WeeklyData(ctx))
	assert.Equal(t, 1.0, f.MonthlyStats(ctx).TotalCooked)
	assert.Equal(t, "Soup", f.FoodCategories(ctx)[0].Category)
	assert.True(t, f.InsertRecords(ctx, models.DailyRecord{Date: "Mon"}))
	assert.NoError(t, f.Insert(ctx, models.DailyRecord{Date: "Mon"}))
}

func TestFallbackDatasetsAreCopies(t *testing.T) {
	first := FallbackWeeklyData()
	first[0].Date = "changed"
	*first[1].Waste = 999

	second := FallbackWeeklyData()
	assert.Equal(t, "Mon", second[0].Date)
	assert.Equal(t, 18.0, second[1].WasteOrZero())
}
