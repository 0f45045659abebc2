package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"menucraft-backend/models"
)

// ConnectDB opens the configured database. Postgres is the production
// driver; sqlite keeps local development and tests dependency-free.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch cfg.DBDriver {
	case "sqlite":
		source := cfg.DBSource
		if source == "" {
			source = "menucraft.db"
		}
		db, err = gorm.Open(sqlite.Open(source), &gorm.Config{})
	default:
		db, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return db, nil
}

// Migrate creates/updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Menu{},
		&models.Category{},
		&models.Item{},
		&models.AnalyticsEvent{},
		&models.MenuSpecials{},
	)
}
