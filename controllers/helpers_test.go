package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/eventplanner/event-orders-api/services"
	"github.com/eventplanner/event-orders-api/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupRouter mounts every resource route over a fresh in-memory store.
// images may be nil to simulate missing image storage.
func setupRouter(t *testing.T, images services.ImageService) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	router := gin.New()
	deps := Dependencies{DB: db}
	if images != nil {
		deps.Images = images
	}
	RegisterRoutes(router, deps)
	return router, db
}

// performRequest sends body (marshalled to JSON unless it is already a
// string) and decodes the JSON response
func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "body: %s", w.Body.String())
	}
	return w, response
}

// assertError checks the error envelope
func assertError(t *testing.T, response map[string]interface{}, code, message string) {
	t.Helper()
	assert.Equal(t, "error", response["status"])
	assert.Equal(t, code, response["code"])
	if message != "" {
		assert.Equal(t, message, response["message"])
	}
}

// assertMoney compares a JSON encoded decimal numerically
func assertMoney(t *testing.T, want string, got interface{}) {
	t.Helper()

	var actual decimal.Decimal
	switch v := got.(type) {
	case string:
		actual = decimal.RequireFromString(v)
	case float64:
		actual = decimal.NewFromFloat(v)
	default:
		t.Fatalf("unexpected money value %#v", got)
	}
	assert.True(t, decimal.RequireFromString(want).Equal(actual), "want %s, got %s", want, actual)
}

func dataMap(t *testing.T, response map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok, "data should be an object: %#v", response["data"])
	return data
}

func dataList(t *testing.T, response map[string]interface{}) []interface{} {
	t.Helper()
	data, ok := response["data"].([]interface{})
	require.True(t, ok, "data should be an array: %#v", response["data"])
	return data
}
