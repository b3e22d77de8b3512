package database

import (
	"context"
	"time"

	"github.com/yeremiapane/food-delivery/utils"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// Ping runs SELECT 1 against the store. Any failure is reported as false;
// the error only goes to the log.
func Ping(ctx context.Context, db *gorm.DB) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		utils.InfoLogger.WithError(err).Warn("database health probe failed")
		return false
	}
	return true
}
