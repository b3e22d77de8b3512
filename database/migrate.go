package database

import (
	"fmt"

	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/utils"
	"gorm.io/gorm"
)

// Models lists the tables in dependency order, parents first.
func Models() []interface{} {
	return []interface{}{
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	}
}

// Migrate creates missing tables and foreign keys. It is safe to run on every
// start; existing columns are left alone.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		// sqlite ships with foreign keys switched off
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	utils.InfoLogger.WithField("dialect", db.Dialector.Name()).Info("schema migration completed")
	return nil
}
