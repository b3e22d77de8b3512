package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-delivery/events"
	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/utils"
	"gorm.io/gorm"
)

// Settlement is the outcome of recording a payment.
type Settlement struct {
	PaymentID   uint
	OrderID     uint
	OrderStatus models.OrderStatus
}

// PaymentService records payments and settles orders
type PaymentService struct {
	db        *gorm.DB
	publisher events.Publisher
	strict    bool
}

func NewPaymentService(db *gorm.DB, publisher events.Publisher, strictTransitions bool) *PaymentService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &PaymentService{db: db, publisher: publisher, strict: strictTransitions}
}

// CreatePayment always stores the payment. The order becomes paid when this
// single payment covers its total; earlier payments are not summed.
func (s *PaymentService) CreatePayment(ctx context.Context, orderID uint, amountCents int64, provider string) (*Settlement, error) {
	if amountCents < 0 {
		return nil, fmt.Errorf("%w: amount_cents must not be negative", ErrInvalidAmount)
	}
	provider = strings.TrimSpace(provider)
	if provider == "" {
		provider = models.DefaultPaymentProvider
	}

	var (
		order   models.Order
		payment models.Payment
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := first(tx, &order, orderID, "Order"); err != nil {
			return err
		}

		payment = models.Payment{
			OrderID:     order.ID,
			Provider:    provider,
			AmountCents: amountCents,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		if amountCents < order.TotalCents {
			return nil
		}
		if s.strict && !order.Status.CanTransitionTo(models.OrderStatusPaid) {
			return nil
		}
		if err := tx.Model(&order).Update("status", models.OrderStatusPaid).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		order.Status = models.OrderStatusPaid
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"payment_id":   payment.ID,
		"provider":     provider,
		"amount_cents": amountCents,
		"order_status": order.Status,
	}).Info("Payment recorded")

	ev := events.NewOrderEvent(events.PaymentRecorded, &order)
	ev.AmountCents = amountCents
	publish(ctx, s.publisher, ev)

	return &Settlement{
		PaymentID:   payment.ID,
		OrderID:     order.ID,
		OrderStatus: order.Status,
	}, nil
}
