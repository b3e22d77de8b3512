package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/food-delivery/kds"
	"github.com/yeremiapane/food-delivery/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is handled in front of the router
	},
}

type KDSController struct {
	Hub *kds.Hub
}

func NewKDSController(hub *kds.Hub) *KDSController {
	return &KDSController{Hub: hub}
}

// Stream upgrades to a websocket that receives order events, optionally
// limited to one restaurant with ?restaurant_id=.
func (kc *KDSController) Stream(c *gin.Context) {
	var restaurantID uint
	if raw := c.Query("restaurant_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant_id"))
			return
		}
		restaurantID = uint(id)
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.InfoLogger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	kc.Hub.Register(ws, restaurantID)

	// the feed is one way; reading only detects the close
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kc.Hub.Unregister(ws)
}
