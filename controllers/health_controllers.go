package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-delivery/database"
	"github.com/yeremiapane/food-delivery/utils"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

func (hc *HealthController) Root(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Healthy"})
}

func (hc *HealthController) Liveness(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, gin.H{"status": "ok"})
}

// Database always answers 200; the body says whether the store responded.
func (hc *HealthController) Database(c *gin.Context) {
	status := "ok"
	if !database.Ping(c.Request.Context(), hc.DB) {
		status = "error"
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"status": status})
}
