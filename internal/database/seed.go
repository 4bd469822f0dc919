package database

import (
	"fmt"
	"time"

	"wastewise/internal/models"
	"wastewise/internal/provider"

	"github.com/jinzhu/gorm"
)

// Seed fills empty tables with the built-in datasets. The weekly records are
// dated over the seven days ending at today.
func Seed(db *gorm.DB, today time.Time) error {
	var recordCount int
	if err := db.Model(&models.DailyRecord{}).Count(&recordCount).Error; err != nil {
		return fmt.Errorf("count records: %w", err)
	}
	if recordCount == 0 {
		week := provider.FallbackWeeklyData()
		start := today.AddDate(0, 0, -(len(week) - 1))
		for i := range week {
			record := week[i]
			record.ID = 0
			record.Date = start.AddDate(0, 0, i).Format("2006-01-02")
			if err := db.Create(&record).Error; err != nil {
				return fmt.Errorf("seed record %s: %w", record.Date, err)
			}
		}
	}

	var statsCount int
	if err := db.Model(&models.MonthlyStats{}).Count(&statsCount).Error; err != nil {
		return fmt.Errorf("count monthly stats: %w", err)
	}
	if statsCount == 0 {
		stats := provider.FallbackMonthlyStats()
		if err := db.Create(&stats).Error; err != nil {
			return fmt.Errorf("seed monthly stats: %w", err)
		}
	}

	var categoryCount int
	if err := db.Model(&models.FoodCategory{}).Count(&categoryCount).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if categoryCount == 0 {
		for _, category := range provider.FallbackFoodCategories() {
			category := category
			if err := db.Create(&category).Error; err != nil {
				return fmt.Errorf("seed category %s: %w", category.Category, err)
			}
		}
	}
	return nil
}
