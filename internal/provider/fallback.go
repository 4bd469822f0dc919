package provider

import (
	"context"
	"io"
	"log/slog"
	"time"

	"wastewise/internal/metrics"
	"wastewise/internal/models"
)

// Dataset labels used in logs and metrics
const (
	DatasetWeekly     = "weekly"
	DatasetMonthly    = "monthly"
	DatasetCategories = "categories"
)

// Fallback answers every read, substituting the built-in dataset when the
// source fails. Failures are logged and counted, never returned.
type Fallback struct {
	source  Provider
	logger  *slog.Logger
	metrics *metrics.Collector
}

// NewFallback wraps source with the fallback policy
func NewFallback(source Provider, logger *slog.Logger, mc *metrics.Collector) *Fallback {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Fallback{
		source:  source,
		logger:  logger,
		metrics: mc,
	}
}

// WeeklyData returns the source's records or FallbackWeeklyData
func (f *Fallback) WeeklyData(ctx context.Context) []models.DailyRecord {
	start := time.Now()
	records, err := f.source.WeeklyData(ctx)
	f.metrics.ObserveFetch(DatasetWeekly, time.Since(start))
	if err != nil {
		f.substitute(DatasetWeekly, err)
		return FallbackWeeklyData()
	}
	return records
}

// MonthlyStats returns the source's aggregate or FallbackMonthlyStats
func (f *Fallback) MonthlyStats(ctx context.Context) models.MonthlyStats {
	start := time.Now()
	stats, err := f.source.MonthlyStats(ctx)
	f.metrics.ObserveFetch(DatasetMonthly, time.Since(start))
	if err != nil {
		f.substitute(DatasetMonthly, err)
		return FallbackMonthlyStats()
	}
	return stats
}

// FoodCategories returns the source's categories or FallbackFoodCategories
func (f *Fallback) FoodCategories(ctx context.Context) []models.FoodCategory {
	start := time.Now()
	categories, err := f.source.FoodCategories(ctx)
	f.metrics.ObserveFetch(DatasetCategories, time.Since(start))
	if err != nil {
		f.substitute(DatasetCategories, err)
		return FallbackFoodCategories()
	}
	return categories
}

// InsertRecords reports whether the write succeeded
func (f *Fallback) InsertRecords(ctx context.Context, records ...models.DailyRecord) bool {
	if err := f.source.InsertRecords(ctx, records...); err != nil {
		f.logger.Error("insert records failed", "error", err, "count", len(records))
		return false
	}
	return true
}

// Insert writes records and returns the underlying error, for callers that
// need to tell bad input from an unavailable source.
func (f *Fallback) Insert(ctx context.Context, records ...models.DailyRecord) error {
	return f.source.InsertRecords(ctx, records...)
}

func (f *Fallback) substitute(dataset string, err error) {
	f.logger.Warn("using fallback dataset", "dataset", dataset, "error", err)
	f.metrics.RecordFallback(dataset)
}
