package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-delivery/events"
	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/utils"
	"gorm.io/gorm"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Page bounds a list query. A zero Limit means DefaultPageLimit.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) normalize() (Page, error) {
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit < 1 || p.Limit > MaxPageLimit {
		return p, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPagination, MaxPageLimit)
	}
	if p.Offset < 0 {
		return p, fmt.Errorf("%w: offset must not be negative", ErrInvalidPagination)
	}
	return p, nil
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	return db.Limit(p.Limit).Offset(p.Offset)
}

// first loads the row with the given primary key, turning a missing row into
// a NotFoundError for entity.
func first(db *gorm.DB, dest interface{}, id uint, entity string) error {
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity, id)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s %d: %w", entity, id, err)
	}
	return nil
}

func exists(db *gorm.DB, model interface{}, id uint, entity string) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check %s %d: %w", entity, id, err)
	}
	if count == 0 {
		return notFound(entity, id)
	}
	return nil
}

// menuItemLookup reads menu items through db, which is the open transaction
// while an order is being created.
func menuItemLookup(db *gorm.DB) MenuItemLookup {
	return func(ctx context.Context, id uint) (*models.MenuItem, error) {
		var item models.MenuItem
		err := db.WithContext(ctx).First(&item, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load menu item %d: %w", id, err)
		}
		return &item, nil
	}
}

// publish runs after commit. A failing publisher is logged and never
// reported to the caller.
func publish(ctx context.Context, p events.Publisher, ev events.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, ev); err != nil {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"event":    ev.Type,
			"order_id": ev.OrderID,
		}).WithError(err).Error("Failed to publish order event")
	}
}
