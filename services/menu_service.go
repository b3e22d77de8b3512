package services

import (
	"context"
	"fmt"

	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/utils"
	"gorm.io/gorm"
)

type MenuItemFilter struct {
	RestaurantID *uint
	IsAvailable  *bool
	Page
}

// MenuItemUpdate holds the fields to change; nil fields are left untouched.
type MenuItemUpdate struct {
	Name        *string
	Description *string
	PriceCents  *int64
	IsAvailable *bool
}

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

func (s *MenuService) Create(ctx context.Context, item *models.MenuItem) error {
	if item.PriceCents < 0 {
		return fmt.Errorf("%w: price_cents must not be negative", ErrInvalidAmount)
	}
	db := s.db.WithContext(ctx)
	if err := exists(db, &models.Restaurant{}, item.RestaurantID, "Restaurant"); err != nil {
		return err
	}
	if err := db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	utils.InfoLogger.WithField("menu_item_id", item.ID).Info("Menu item created")
	return nil
}

func (s *MenuService) List(ctx context.Context, filter MenuItemFilter) ([]models.MenuItem, error) {
	page, err := filter.Page.normalize()
	if err != nil {
		return nil, err
	}

	q := s.db.WithContext(ctx).Model(&models.MenuItem{})
	if filter.RestaurantID != nil {
		q = q.Where("restaurant_id = ?", *filter.RestaurantID)
	}
	if filter.IsAvailable != nil {
		q = q.Where("is_available = ?", *filter.IsAvailable)
	}

	items := make([]models.MenuItem, 0)
	if err := page.apply(q.Order("id ASC")).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := first(s.db.WithContext(ctx), &item, id, "Menu item"); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update changes the current menu entry only. Order items keep the price
// captured when they were created.
func (s *MenuService) Update(ctx context.Context, id uint, upd MenuItemUpdate) (*models.MenuItem, error) {
	if upd.PriceCents != nil && *upd.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price_cents must not be negative", ErrInvalidAmount)
	}

	var item models.MenuItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := first(tx, &item, id, "Menu item"); err != nil {
			return err
		}

		changes := map[string]interface{}{}
		if upd.Name != nil {
			changes["name"] = *upd.Name
		}
		if upd.Description != nil {
			changes["description"] = *upd.Description
		}
		if upd.PriceCents != nil {
			changes["price_cents"] = *upd.PriceCents
		}
		if upd.IsAvailable != nil {
			changes["is_available"] = *upd.IsAvailable
		}
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&models.MenuItem{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return fmt.Errorf("failed to update menu item %d: %w", id, err)
		}
		return tx.First(&item, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete refuses to remove items that existing orders still reference.
func (s *MenuService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.MenuItem{}, id, "Menu item"); err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&models.OrderItem{}).Where("menu_item_id = ?", id).Count(&refs).Error; err != nil {
			return fmt.Errorf("failed to check menu item %d references: %w", id, err)
		}
		if refs > 0 {
			return fmt.Errorf("%w: %d order items", ErrMenuItemInUse, refs)
		}

		if err := tx.Delete(&models.MenuItem{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete menu item %d: %w", id, err)
		}
		utils.InfoLogger.WithField("menu_item_id", id).Info("Menu item deleted")
		return nil
	})
}
