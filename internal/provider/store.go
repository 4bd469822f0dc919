package provider

import (
	"context"
	"fmt"

	"wastewise/internal/models"

	"github.com/jinzhu/gorm"
)

// Store reads and writes records through gorm
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on an open connection
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WeeklyData returns all records ordered by date ascending
func (s *Store) WeeklyData(ctx context.Context) ([]models.DailyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var records []models.DailyRecord
	if err := s.db.Order("date asc").Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: weekly data: %v", ErrUnavailable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: weekly data: no rows", ErrUnavailable)
	}
	return records, nil
}

// MonthlyStats returns the monthly aggregate row
func (s *Store) MonthlyStats(ctx context.Context) (models.MonthlyStats, error) {
	if err := ctx.Err(); err != nil {
		return models.MonthlyStats{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var stats models.MonthlyStats
	if err := s.db.First(&stats).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.MonthlyStats{}, fmt.Errorf("%w: monthly stats: no rows", ErrUnavailable)
		}
		return models.MonthlyStats{}, fmt.Errorf("%w: monthly stats: %v", ErrUnavailable, err)
	}
	return stats, nil
}

// FoodCategories returns the wasted-by-category breakdown
func (s *Store) FoodCategories(ctx context.Context) ([]models.FoodCategory, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var categories []models.FoodCategory
	if err := s.db.Order("id asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("%w: food categories: %v", ErrUnavailable, err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: food categories: no rows", ErrUnavailable)
	}
	return categories, nil
}

// InsertRecords validates and writes records in one transaction
func (s *Store) InsertRecords(ctx context.Context, records ...models.DailyRecord) error {
	if err := ValidateRecords(records); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin insert: %w", tx.Error)
	}
	for i := range records {
		record := records[i]
		record.ID = 0
		if err := tx.Create(&record).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("insert record %q: %w", record.Date, err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit insert: %w", err)
	}
	return nil
}
