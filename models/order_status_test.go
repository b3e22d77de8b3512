package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range OrderStatuses() {
		assert.True(t, OrderStatus(s).Valid(), s)
	}
	assert.False(t, OrderStatus("bogus").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatusesSorted(t *testing.T) {
	assert.Equal(t, []string{"cancelled", "created", "delivered", "out_for_delivery", "paid", "preparing"}, OrderStatuses())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusCreated, OrderStatusPaid, true},
		{OrderStatusCreated, OrderStatusCancelled, true},
		{OrderStatusPaid, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusOutForDelivery, true},
		{OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{OrderStatusDelivered, OrderStatusCreated, false},
		{OrderStatusCancelled, OrderStatusPaid, false},
		{OrderStatusCreated, OrderStatusDelivered, false},
		{OrderStatusOutForDelivery, OrderStatusCancelled, false},
		{OrderStatusPaid, OrderStatusPaid, true},
		{OrderStatus("bogus"), OrderStatus("bogus"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestOrderItemsTotal(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Quantity: 2, PriceCentsEach: 500},
		{Quantity: 3, PriceCentsEach: 125},
	}}
	assert.Equal(t, int64(1375), order.ItemsTotal())
}
