package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/food-delivery/database/dbtest"
	"github.com/yeremiapane/food-delivery/models"
)

func TestRestaurantCreateAndList(t *testing.T) {
	db := dbtest.New(t)
	svc := NewRestaurantService(db)
	ctx := context.Background()

	for _, r := range []models.Restaurant{
		{Name: "Warung Padang", IsActive: true},
		{Name: "Closed Diner", IsActive: false},
		{Name: "Sate House", IsActive: true},
	} {
		r := r
		require.NoError(t, svc.Create(ctx, &r))
		assert.NotZero(t, r.ID)
	}

	all, err := svc.List(ctx, RestaurantFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Warung Padang", all[0].Name)

	active := true
	filtered, err := svc.List(ctx, RestaurantFilter{IsActive: &active, Page: Page{Limit: 1, Offset: 1}})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Sate House", filtered[0].Name)

	_, err = svc.List(ctx, RestaurantFilter{Page: Page{Limit: 500}})
	assert.ErrorIs(t, err, ErrInvalidPagination)

	_, err = svc.Get(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestaurantDeleteCascades(t *testing.T) {
	db := dbtest.New(t)
	order, f := newOrder(t, db, 1)
	ctx := context.Background()

	_, err := NewPaymentService(db, nil, false).CreatePayment(ctx, order.ID, 500, "mock")
	require.NoError(t, err)

	svc := NewRestaurantService(db)
	require.NoError(t, svc.Delete(ctx, f.Restaurant.ID))

	assert.Equal(t, int64(0), countRows(t, db, &models.Payment{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.OrderItem{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.Order{}))
	// only the other restaurant's item survives
	assert.Equal(t, int64(1), countRows(t, db, &models.MenuItem{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.Restaurant{}))

	_, err = svc.Get(ctx, f.Restaurant.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, f.Restaurant.ID), ErrNotFound)
}

func TestMenuItemLifecycle(t *testing.T) {
	db := dbtest.New(t)
	f := dbtest.Seed(t, db)
	svc := NewMenuService(db)
	ctx := context.Background()

	item := models.MenuItem{RestaurantID: f.Restaurant.ID, Name: "Es Teh", PriceCents: 150, IsAvailable: true}
	require.NoError(t, svc.Create(ctx, &item))

	err := svc.Create(ctx, &models.MenuItem{RestaurantID: 999, Name: "Ghost", PriceCents: 1})
	assert.ErrorIs(t, err, ErrNotFound)
	err = svc.Create(ctx, &models.MenuItem{RestaurantID: f.Restaurant.ID, Name: "Refund", PriceCents: -1})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	name := "Es Teh Manis"
	off := false
	updated, err := svc.Update(ctx, item.ID, MenuItemUpdate{Name: &name, IsAvailable: &off})
	require.NoError(t, err)
	assert.Equal(t, "Es Teh Manis", updated.Name)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, int64(150), updated.PriceCents)

	_, err = svc.Update(ctx, item.ID, MenuItemUpdate{PriceCents: int64Ptr(-5)})
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = svc.Update(ctx, 999, MenuItemUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	restaurantID := f.Restaurant.ID
	available := true
	listed, err := svc.List(ctx, MenuItemFilter{RestaurantID: &restaurantID, IsAvailable: &available})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, f.Available.ID, listed[0].ID)

	require.NoError(t, svc.Delete(ctx, item.ID))
	_, err = svc.Get(ctx, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Menu item not found")
}

func TestMenuItemDeleteInUse(t *testing.T) {
	db := dbtest.New(t)
	order, f := newOrder(t, db, 1)
	svc := NewMenuService(db)

	err := svc.Delete(context.Background(), f.Available.ID)
	assert.ErrorIs(t, err, ErrMenuItemInUse)
	assert.True(t, IsConflict(err))

	got, err := NewOrderService(db, nil, false).GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}
