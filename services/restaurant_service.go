package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/utils"
	"gorm.io/gorm"
)

type RestaurantFilter struct {
	IsActive *bool
	Page
}

type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

func (s *RestaurantService) Create(ctx context.Context, restaurant *models.Restaurant) error {
	if err := s.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	utils.InfoLogger.WithField("restaurant_id", restaurant.ID).Info("Restaurant created")
	return nil
}

func (s *RestaurantService) List(ctx context.Context, filter RestaurantFilter) ([]models.Restaurant, error) {
	page, err := filter.Page.normalize()
	if err != nil {
		return nil, err
	}

	q := s.db.WithContext(ctx).Model(&models.Restaurant{})
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}

	restaurants := make([]models.Restaurant, 0)
	if err := page.apply(q.Order("id ASC")).Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *RestaurantService) Get(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := first(s.db.WithContext(ctx), &restaurant, id, "Restaurant"); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Delete removes the restaurant with its menu, orders, order items and
// payments. Rows are deleted children first so the result does not depend on
// the store enforcing ON DELETE CASCADE.
func (s *RestaurantService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.Restaurant{}, id, "Restaurant"); err != nil {
			return err
		}

		orderIDs := tx.Model(&models.Order{}).Select("id").Where("restaurant_id = ?", id)

		steps := []struct {
			name  string
			query *gorm.DB
			model interface{}
		}{
			{"payments", tx.Where("order_id IN (?)", orderIDs), &models.Payment{}},
			{"order items", tx.Where("order_id IN (?)", orderIDs), &models.OrderItem{}},
			{"orders", tx.Where("restaurant_id = ?", id), &models.Order{}},
			{"menu items", tx.Where("restaurant_id = ?", id), &models.MenuItem{}},
			{"restaurant", tx.Where("id = ?", id), &models.Restaurant{}},
		}
		for _, step := range steps {
			res := step.query.Delete(step.model)
			if res.Error != nil {
				return fmt.Errorf("failed to delete %s of restaurant %d: %w", step.name, id, res.Error)
			}
			utils.InfoLogger.WithFields(logrus.Fields{
				"restaurant_id": id,
				"table":         step.name,
				"rows":          res.RowsAffected,
			}).Debug("Restaurant cascade step")
		}
		utils.InfoLogger.WithField("restaurant_id", id).Info("Restaurant deleted")
		return nil
	})
}
