package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-delivery/events"
	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/utils"
	"gorm.io/gorm"
)

type OrderFilter struct {
	Status *string
	Page
}

// OrderService owns the Order aggregate: the order row and its items are
// always written together.
type OrderService struct {
	db        *gorm.DB
	publisher events.Publisher
	strict    bool
}

// NewOrderService creates the service. With strictTransitions set, status
// updates outside the order lifecycle are rejected instead of only logged.
func NewOrderService(db *gorm.DB, publisher events.Publisher, strictTransitions bool) *OrderService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &OrderService{db: db, publisher: publisher, strict: strictTransitions}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

func (s *OrderService) CreateOrder(ctx context.Context, restaurantID uint, lines []LineRequest) (*models.Order, error) {
	var orderID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.Restaurant{}, restaurantID, "Restaurant"); err != nil {
			return err
		}

		priced, err := PriceOrder(ctx, restaurantID, lines, menuItemLookup(tx))
		if err != nil {
			return err
		}

		order := models.Order{
			RestaurantID: restaurantID,
			Status:       models.OrderStatusCreated,
			TotalCents:   priced.TotalCents,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		items := priced.OrderItems(order.ID)
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":      order.ID,
		"restaurant_id": order.RestaurantID,
		"total_cents":   order.TotalCents,
		"items":         len(order.Items),
	}).Info("Order created")
	publish(ctx, s.publisher, events.NewOrderEvent(events.OrderCreated, order))
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := first(preloadItems(s.db.WithContext(ctx)), &order, id, "Order"); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns the newest orders first.
func (s *OrderService) ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	page, err := filter.Page.normalize()
	if err != nil {
		return nil, err
	}

	q := preloadItems(s.db.WithContext(ctx).Model(&models.Order{}))
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}

	orders := make([]models.Order, 0)
	if err := page.apply(q.Order("id DESC")).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateDeliveryStatus overwrites the order status. Transitions outside the
// lifecycle are logged, and rejected in strict mode.
func (s *OrderService) UpdateDeliveryStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	next := models.OrderStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w %q, allowed: %v", ErrInvalidStatus, status, models.OrderStatuses())
	}

	var previous models.OrderStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := first(tx, &order, id, "Order"); err != nil {
			return err
		}
		previous = order.Status

		if !previous.CanTransitionTo(next) {
			if s.strict {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, previous, next)
			}
			utils.InfoLogger.WithFields(logrus.Fields{
				"order_id": id,
				"from":     previous,
				"to":       next,
			}).Warn("Order status moved outside the delivery lifecycle")
		}

		if err := tx.Model(&order).Update("status", next).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": id,
		"from":     previous,
		"to":       next,
	}).Info("Order status updated")
	publish(ctx, s.publisher, events.NewOrderEvent(events.OrderStatusChanged, order))
	return order, nil
}
