package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/food-delivery/services"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()

	restaurantCtrl := NewRestaurantController(services.NewRestaurantService(db))
	router.POST("/restaurants", restaurantCtrl.CreateRestaurant)
	router.GET("/restaurants", restaurantCtrl.ListRestaurants)
	router.GET("/restaurants/:id", restaurantCtrl.GetRestaurant)
	router.DELETE("/restaurants/:id", restaurantCtrl.DeleteRestaurant)

	menuCtrl := NewMenuItemController(services.NewMenuService(db))
	router.POST("/menu-items", menuCtrl.CreateMenuItem)
	router.GET("/menu-items", menuCtrl.ListMenuItems)
	router.GET("/menu-items/:id", menuCtrl.GetMenuItem)
	router.PATCH("/menu-items/:id", menuCtrl.UpdateMenuItem)
	router.DELETE("/menu-items/:id", menuCtrl.DeleteMenuItem)

	orderCtrl := NewOrderController(services.NewOrderService(db, nil, false), "https://track.example.com")
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders", orderCtrl.ListOrders)
	router.GET("/orders/:id", orderCtrl.GetOrder)
	router.PATCH("/orders/:id/delivery", orderCtrl.UpdateDeliveryStatus)
	router.GET("/orders/:id/qrcode", orderCtrl.GetOrderQRCode)

	paymentCtrl := NewPaymentController(services.NewPaymentService(db, nil, false))
	router.POST("/payments", paymentCtrl.CreatePayment)

	healthCtrl := NewHealthController(db)
	router.GET("/", healthCtrl.Root)
	router.GET("/health", healthCtrl.Liveness)
	router.GET("/health/db", healthCtrl.Database)
	return router
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

type errorBody struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

type orderBody struct {
	ID           uint   `json:"id"`
	RestaurantID uint   `json:"restaurant_id"`
	Status       string `json:"status"`
	TotalCents   int64  `json:"total_cents"`
	Items        []struct {
		ID             uint  `json:"id"`
		MenuItemID     uint  `json:"menu_item_id"`
		Quantity       int   `json:"quantity"`
		PriceCentsEach int64 `json:"price_cents_each"`
	} `json:"items"`
}
