package models

import "sort"

type OrderStatus string

const (
	OrderStatusCreated        OrderStatus = "created"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// orderLifecycle lists the forward moves of an order. Delivered and
// cancelled are terminal.
var orderLifecycle = map[OrderStatus][]OrderStatus{
	OrderStatusCreated:        {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:           {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusOutForDelivery, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusDelivered},
	OrderStatusDelivered:      {},
	OrderStatusCancelled:      {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderLifecycle[s]
	return ok
}

// CanTransitionTo reports whether next follows s in the order lifecycle.
// Writing the same status again is always allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return next.Valid()
	}
	for _, allowed := range orderLifecycle[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderStatuses returns every recognized status in lexical order.
func OrderStatuses() []string {
	out := make([]string, 0, len(orderLifecycle))
	for s := range orderLifecycle {
		out = append(out, string(s))
	}
	sort.Strings(out)
	return out
}
