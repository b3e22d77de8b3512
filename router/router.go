package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-delivery/config"
	"github.com/yeremiapane/food-delivery/controllers"
	"github.com/yeremiapane/food-delivery/events"
	"github.com/yeremiapane/food-delivery/kds"
	"github.com/yeremiapane/food-delivery/middlewares"
	"github.com/yeremiapane/food-delivery/services"
	"gorm.io/gorm"
)

// Dependencies are built once in main and shared by every handler.
type Dependencies struct {
	DB       *gorm.DB
	Settings config.Settings
	Hub      *kds.Hub
	// Publisher receives order events after commit. Defaults to Hub.
	Publisher events.Publisher
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	if deps.Hub == nil {
		deps.Hub = kds.NewHub()
	}
	if deps.Publisher == nil {
		deps.Publisher = deps.Hub
	}

	rateLimiter := middlewares.NewRateLimiter(deps.Settings.RateLimitRPS, deps.Settings.RateLimitBurst)

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())

	strict := deps.Settings.StrictStatusTransitions
	healthCtrl := controllers.NewHealthController(deps.DB)
	restaurantCtrl := controllers.NewRestaurantController(services.NewRestaurantService(deps.DB))
	menuCtrl := controllers.NewMenuItemController(services.NewMenuService(deps.DB))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(deps.DB, deps.Publisher, strict), deps.Settings.PublicBaseURL)
	paymentCtrl := controllers.NewPaymentController(services.NewPaymentService(deps.DB, deps.Publisher, strict))
	kdsCtrl := controllers.NewKDSController(deps.Hub)

	// Health checks stay outside the rate limit
	r.GET("/", healthCtrl.Root)
	r.GET("/health", healthCtrl.Liveness)
	r.GET("/health/db", healthCtrl.Database)

	api := r.Group("/")
	api.Use(rateLimiter.RateLimit())
	{
		api.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		api.GET("/restaurants", restaurantCtrl.ListRestaurants)
		api.GET("/restaurants/:id", restaurantCtrl.GetRestaurant)
		api.DELETE("/restaurants/:id", restaurantCtrl.DeleteRestaurant)

		api.POST("/menu-items", menuCtrl.CreateMenuItem)
		api.GET("/menu-items", menuCtrl.ListMenuItems)
		api.GET("/menu-items/:id", menuCtrl.GetMenuItem)
		api.PATCH("/menu-items/:id", menuCtrl.UpdateMenuItem)
		api.DELETE("/menu-items/:id", menuCtrl.DeleteMenuItem)

		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders", orderCtrl.ListOrders)
		api.GET("/orders/:id", orderCtrl.GetOrder)
		api.PATCH("/orders/:id/delivery", orderCtrl.UpdateDeliveryStatus)
		api.GET("/orders/:id/qrcode", orderCtrl.GetOrderQRCode)

		api.POST("/payments", paymentCtrl.CreatePayment)

		api.GET("/ws/orders", kdsCtrl.Stream)
	}

	return r
}
