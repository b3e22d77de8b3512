package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondError(c, http.StatusNotFound, errors.New("Order not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
	var resp JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Status)
	assert.Equal(t, "Order not found", resp.Message)
}

func TestRespondMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondMessage(c, http.StatusOK, "deleted")

	var resp JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, "deleted", resp.Message)
}

func TestInitLoggerFallsBackToInfo(t *testing.T) {
	InitLogger("nonsense", "json")
	assert.Equal(t, "info", InfoLogger.GetLevel().String())
	assert.Equal(t, "error", ErrorLogger.GetLevel().String())
}
