package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/food-delivery/database/dbtest"
	"github.com/yeremiapane/food-delivery/models"
)

func TestRestaurantEndpoints(t *testing.T) {
	r := setupRouter(dbtest.New(t))

	w := doRequest(t, r, http.MethodPost, "/restaurants", gin.H{"name": "Bakso Pak Min", "description": "Meatball soup"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created models.Restaurant
	decode(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.Description)
	assert.Equal(t, "Meatball soup", *created.Description)

	w = doRequest(t, r, http.MethodPost, "/restaurants", gin.H{"name": "Closed", "is_active": false})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodPost, "/restaurants", gin.H{"description": "no name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/restaurants?is_active=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var active []models.Restaurant
	decode(t, w, &active)
	require.Len(t, active, 1)
	assert.Equal(t, created.ID, active[0].ID)

	path := fmt.Sprintf("/restaurants/%d", created.ID)
	w = doRequest(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = doRequest(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(t, r, http.MethodGet, "/restaurants/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRestaurantWithOrders(t *testing.T) {
	db := dbtest.New(t)
	f := dbtest.Seed(t, db)
	r := setupRouter(db)
	order := createOrder(t, r, f, 1)

	w := doRequest(t, r, http.MethodPost, "/payments", gin.H{"order_id": order.ID, "amount_cents": 500})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/restaurants/%d", f.Restaurant.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/menu-items/%d", f.Available.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
