package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/eventplanner/event-orders-api/models"
	"github.com/eventplanner/event-orders-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCRUD(t *testing.T) {
	router, db := setupRouter(t, nil)

	w, response := performRequest(t, router, http.MethodPost, "/services", map[string]interface{}{
		"name":        "Photography",
		"description": "Four hours of coverage",
		"price":       "300.00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := dataMap(t, response)
	assert.Equal(t, true, created["isActive"], "services are active by default")
	path := fmt.Sprintf("/services/%d", int(created["id"].(float64)))

	w, response = performRequest(t, router, http.MethodPost, "/services", map[string]interface{}{
		"name":     "Valet",
		"price":    50,
		"isActive": false,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, false, dataMap(t, response)["isActive"])

	w, response = performRequest(t, router, http.MethodPut, path, map[string]interface{}{"isActive": false, "price": "320"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := dataMap(t, response)
	assert.Equal(t, "Photography", updated["name"])
	assert.Equal(t, false, updated["isActive"])
	assertMoney(t, "320", updated["price"])

	w, response = performRequest(t, router, http.MethodGet, "/services", nil)
	require.Equal(t, http.StatusOK, w.Code)
	services := dataList(t, response)
	require.Len(t, services, 2)
	assert.Equal(t, "Photography", services[0].(map[string]interface{})["name"], "listed by name")

	w, response = performRequest(t, router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Service deleted successfully", response["message"])
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Service{}))

	w, response = performRequest(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assertError(t, response, "NOT_FOUND", "Service not found")
}

func TestServiceValidation(t *testing.T) {
	router, _ := setupRouter(t, nil)

	w, response := performRequest(t, router, http.MethodPost, "/services", map[string]interface{}{"price": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertError(t, response, "INVALID_REQUEST", "Invalid request data")

	w, response = performRequest(t, router, http.MethodPost, "/services", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertError(t, response, "INVALID_REQUEST", "Invalid request data")

	w, response = performRequest(t, router, http.MethodGet, "/services/photography", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assertError(t, response, "NOT_FOUND", "Service not found")
}
