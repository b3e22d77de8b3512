package events

import (
	"context"
	"errors"
	"time"

	"github.com/yeremiapane/food-delivery/models"
)

type Type string

const (
	OrderCreated       Type = "order_created"
	OrderStatusChanged Type = "order_status_changed"
	PaymentRecorded    Type = "payment_recorded"
)

// Event describes a committed change to an order aggregate.
type Event struct {
	Type         Type               `json:"type"`
	OrderID      uint               `json:"order_id"`
	RestaurantID uint               `json:"restaurant_id"`
	Status       models.OrderStatus `json:"status"`
	TotalCents   int64              `json:"total_cents"`
	AmountCents  int64              `json:"amount_cents,omitempty"`
	OccurredAt   time.Time          `json:"occurred_at"`
}

func NewOrderEvent(t Type, order *models.Order) Event {
	return Event{
		Type:         t,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		TotalCents:   order.TotalCents,
		OccurredAt:   time.Now().UTC(),
	}
}

// Publisher is called only after the transaction that produced the event
// has committed.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, ev Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
