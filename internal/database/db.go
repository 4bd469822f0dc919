// Package database opens the gorm connection, migrates the schema and seeds
// starter data.
package database

import (
	"fmt"
	"time"

	"wastewise/internal/config"
	"wastewise/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"              // SQLite driver
)

// Open connects using the configured dialect and migrates the schema
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.LogMode(cfg.Debug)

	// Configure connection pool
	if cfg.Driver == "sqlite3" {
		// one writer, and :memory: databases are per-connection
		db.DB().SetMaxOpenConns(1)
	} else {
		db.DB().SetMaxIdleConns(10)
		db.DB().SetMaxOpenConns(100)
		db.DB().SetConnMaxLifetime(time.Hour)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.DailyRecord{},
		&models.MonthlyStats{},
		&models.FoodCategory{},
	).Error; err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
