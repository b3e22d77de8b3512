package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-delivery/services"
	"github.com/yeremiapane/food-delivery/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// OrderID is not required here: a missing or zero id is an unknown order (404).
type createPaymentRequest struct {
	OrderID     uint   `json:"order_id"`
	AmountCents *int64 `json:"amount_cents" binding:"required"`
	Provider    string `json:"provider" binding:"max=40"`
}

// CreatePayment records a payment and reports the resulting order status.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	settlement, err := pc.Payments.CreatePayment(c.Request.Context(), req.OrderID, *req.AmountCents, req.Provider)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"status":       "ok",
		"order_id":     settlement.OrderID,
		"order_status": settlement.OrderStatus,
	})
}
