package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/services"
	"github.com/yeremiapane/food-delivery/utils"
)

type RestaurantController struct {
	Restaurants *services.RestaurantService
}

func NewRestaurantController(restaurants *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Restaurants: restaurants}
}

type createRestaurantRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type restaurantListQuery struct {
	IsActive *bool `form:"is_active"`
	pageQuery
}

// CreateRestaurant
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req createRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := rc.Restaurants.Create(c.Request.Context(), &restaurant); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, restaurant)
}

// ListRestaurants
func (rc *RestaurantController) ListRestaurants(c *gin.Context) {
	var q restaurantListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurants, err := rc.Restaurants.List(c.Request.Context(), services.RestaurantFilter{
		IsActive: q.IsActive,
		Page:     q.page(),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, restaurants)
}

// GetRestaurant
func (rc *RestaurantController) GetRestaurant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	restaurant, err := rc.Restaurants.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, restaurant)
}

// DeleteRestaurant removes the restaurant together with its menu and orders.
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := rc.Restaurants.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"status": "ok"})
}
