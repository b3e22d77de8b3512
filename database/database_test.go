package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/food-delivery/utils"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestPingHealthy(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("SELECT 1")).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.True(t, Ping(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPingUnreachable(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("SELECT 1")).WillReturnError(errors.New("dial tcp: connection refused"))

	utils.InitLogger("info", "text")
	hook := logtest.NewLocal(utils.InfoLogger)

	assert.False(t, Ping(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())

	entry := hook.LastEntry()
	require.NotNil(t, entry, "failed probe must be logged")
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "database health probe failed", entry.Message)
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "dial tcp: connection refused")
}

func TestMigrateSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migrate_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, Migrate(db))
	// running twice must be harmless
	require.NoError(t, Migrate(db))

	for _, table := range []string{"restaurants", "menu_items", "orders", "order_items", "payments"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
