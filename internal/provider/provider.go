// Package provider reads and writes kitchen records. Provider implementations
// report failures; Fallback is the caller-side policy that swaps in built-in
// data when a read fails.
package provider

import (
	"context"
	"errors"
	"fmt"

	"wastewise/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnavailable wraps every failed or empty read.
	ErrUnavailable = errors.New("data provider unavailable")
	// ErrInvalidRecord is returned when a record fails validation on write.
	ErrInvalidRecord = errors.New("invalid record")
)

// Provider is the data source the analyzer consumes
type Provider interface {
	WeeklyData(ctx context.Context) ([]models.DailyRecord, error)
	MonthlyStats(ctx context.Context) (models.MonthlyStats, error)
	FoodCategories(ctx context.Context) ([]models.FoodCategory, error)
	InsertRecords(ctx context.Context, records ...models.DailyRecord) error
}

var validate = validator.New()

// ValidateRecords checks every record before it is written.
func ValidateRecords(records []models.DailyRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: no records", ErrInvalidRecord)
	}
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrInvalidRecord, i, err)
		}
	}
	return nil
}
