package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yeremiapane/food-delivery/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the store selected by DB_DRIVER and verifies it answers a ping.
// The returned handle is shared by every request for the process lifetime.
func InitDB(ctx context.Context, s Settings) (*gorm.DB, error) {
	dsn, err := s.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch s.DBDriver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", s.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  NewGormLogger(),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	configurePool(sqlDB, s.DBDriver)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// NewGormLogger routes gorm's SQL log through the shared logrus logger.
func NewGormLogger() logger.Interface {
	return logger.New(utils.InfoLogger, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

func configurePool(sqlDB *sql.DB, driver string) {
	if driver == DriverSQLite {
		// sqlite serializes writers anyway
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}
