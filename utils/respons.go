package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondJSON writes data as the whole body. Order, restaurant and menu
// payloads are not wrapped so clients get the resource shape directly.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
	})
}
