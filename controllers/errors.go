package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-delivery/services"
	"github.com/yeremiapane/food-delivery/utils"
)

var errInternal = errors.New("internal server error")

// respondServiceError maps service errors to HTTP statuses. Unknown errors
// are logged and hidden from the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case services.IsValidation(err):
		utils.RespondError(c, http.StatusBadRequest, err)
	case services.IsConflict(err):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		}).WithError(err).Error("Request failed")
		utils.RespondError(c, http.StatusInternalServerError, errInternal)
	}
}

// pathID parses the :id parameter and writes a 400 when it is not a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return 0, false
	}
	return uint(id), true
}

type pageQuery struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

func (q pageQuery) page() services.Page {
	return services.Page{Limit: q.Limit, Offset: q.Offset}
}
