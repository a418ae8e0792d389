package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServerStartup verifies the full application router can be built
func TestServerStartup(t *testing.T) {
	router := newTestRouter(t)
	assert.NotNil(t, router, "Router should be initialized")
}

// TestAPIHealthEndpointAcceptance calls the API over a real HTTP connection
func TestAPIHealthEndpointAcceptance(t *testing.T) {
	server := httptest.NewServer(newTestRouter(t))
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "Health endpoint should return 200 OK")

	var response struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, "Event Orders API is running", response.Message)
}

// TestHealthEndpointAvailability tests that the health endpoint answers consistently
func TestHealthEndpointAvailability(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 5; i++ {
		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, fmt.Sprintf("Request %d should succeed", i+1))

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "success", response["status"], fmt.Sprintf("Request %d should succeed", i+1))
	}
}

// TestHealthEndpointResponseTime tests that the endpoint responds quickly
func TestHealthEndpointResponseTime(t *testing.T) {
	router := newTestRouter(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	start := time.Now()
	router.ServeHTTP(w, req)
	duration := time.Since(start)

	assert.Less(t, duration, 100*time.Millisecond, "Health endpoint should respond in less than 100ms")
}

// TestUnknownRouteAcceptance checks unmatched paths are plain 404s
func TestUnknownRouteAcceptance(t *testing.T) {
	server := httptest.NewServer(newTestRouter(t))
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
