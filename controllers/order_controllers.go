package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"github.com/yeremiapane/food-delivery/services"
	"github.com/yeremiapane/food-delivery/utils"
)

const qrCodeSize = 256

type OrderController struct {
	Orders *services.OrderService
	// BaseURL prefixes the tracking link encoded in order QR codes
	BaseURL string
}

func NewOrderController(orders *services.OrderService, baseURL string) *OrderController {
	return &OrderController{Orders: orders, BaseURL: baseURL}
}

type orderLineRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity"`
}

type createOrderRequest struct {
	RestaurantID uint               `json:"restaurant_id" binding:"required"`
	Items        []orderLineRequest `json:"items" binding:"dive"`
}

type deliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type orderListQuery struct {
	Status *string `form:"status"`
	pageQuery
}

// CreateOrder prices the submitted lines and stores the order with its items.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	lines := make([]services.LineRequest, len(req.Items))
	for i, item := range req.Items {
		lines[i] = services.LineRequest{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}

	order, err := oc.Orders.CreateOrder(c.Request.Context(), req.RestaurantID, lines)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

// ListOrders
func (oc *OrderController) ListOrders(c *gin.Context) {
	var q orderListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := oc.Orders.ListOrders(c.Request.Context(), services.OrderFilter{
		Status: q.Status,
		Page:   q.page(),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders)
}

// GetOrder
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := oc.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

// UpdateDeliveryStatus
func (oc *OrderController) UpdateDeliveryStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req deliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateDeliveryStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

// GetOrderQRCode renders a PNG QR code linking to the order.
func (oc *OrderController) GetOrderQRCode(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := oc.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	link := fmt.Sprintf("%s/orders/%d", oc.BaseURL, order.ID)
	png, err := qrcode.Encode(link, qrcode.Medium, qrCodeSize)
	if err != nil {
		respondServiceError(c, fmt.Errorf("failed to encode qr code: %w", err))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
