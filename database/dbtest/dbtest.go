// Package dbtest opens migrated in-memory sqlite databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/food-delivery/database"
	"github.com/yeremiapane/food-delivery/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a private, migrated database that is closed with the test.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Fixture is the catalog most tests start from.
type Fixture struct {
	Restaurant  models.Restaurant
	Other       models.Restaurant
	Available   models.MenuItem
	Unavailable models.MenuItem
	Foreign     models.MenuItem
}

// Seed creates two restaurants. The first has an available item at 500 and an
// unavailable one at 300; the second has one available item at 1000.
func Seed(t testing.TB, db *gorm.DB) Fixture {
	t.Helper()

	f := Fixture{
		Restaurant: models.Restaurant{Name: "R1", IsActive: true},
		Other:      models.Restaurant{Name: "R2", IsActive: false},
	}
	require.NoError(t, db.Create(&f.Restaurant).Error)
	require.NoError(t, db.Create(&f.Other).Error)

	f.Available = models.MenuItem{RestaurantID: f.Restaurant.ID, Name: "M1", PriceCents: 500, IsAvailable: true}
	f.Unavailable = models.MenuItem{RestaurantID: f.Restaurant.ID, Name: "M2", PriceCents: 300, IsAvailable: false}
	f.Foreign = models.MenuItem{RestaurantID: f.Other.ID, Name: "M3", PriceCents: 1000, IsAvailable: true}
	for _, item := range []*models.MenuItem{&f.Available, &f.Unavailable, &f.Foreign} {
		require.NoError(t, db.Create(item).Error)
	}
	return f
}
