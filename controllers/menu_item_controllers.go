package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/services"
	"github.com/yeremiapane/food-delivery/utils"
)

type MenuItemController struct {
	Menu *services.MenuService
}

func NewMenuItemController(menu *services.MenuService) *MenuItemController {
	return &MenuItemController{Menu: menu}
}

type createMenuItemRequest struct {
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Name         string  `json:"name" binding:"required,max=200"`
	Description  *string `json:"description"`
	PriceCents   *int64  `json:"price_cents" binding:"required"`
	IsAvailable  *bool   `json:"is_available"`
}

type updateMenuItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents"`
	IsAvailable *bool   `json:"is_available"`
}

type menuItemListQuery struct {
	RestaurantID *uint `form:"restaurant_id"`
	IsAvailable  *bool `form:"is_available"`
	pageQuery
}

// CreateMenuItem
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	var req createMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		PriceCents:   *req.PriceCents,
		IsAvailable:  req.IsAvailable == nil || *req.IsAvailable,
	}
	if err := mc.Menu.Create(c.Request.Context(), &item); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

// ListMenuItems
func (mc *MenuItemController) ListMenuItems(c *gin.Context) {
	var q menuItemListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	items, err := mc.Menu.List(c.Request.Context(), services.MenuItemFilter{
		RestaurantID: q.RestaurantID,
		IsAvailable:  q.IsAvailable,
		Page:         q.page(),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

// GetMenuItem
func (mc *MenuItemController) GetMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := mc.Menu.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

// UpdateMenuItem changes price or availability for future orders only.
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Menu.Update(c.Request.Context(), id, services.MenuItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

// DeleteMenuItem
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := mc.Menu.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"status": "ok"})
}
