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

func eventLead(name string) map[string]interface{} {
	return map[string]interface{}{
		"clientName":      name,
		"clientEmail":     name + "@example.com",
		"clientPhone":     "555-0100",
		"eventType":       "wedding",
		"eventDate":       "2026-06-20",
		"eventStartTime":  "16:00",
		"guestCount":      120,
		"photography":     true,
		"budget":          "8500.00",
		"servicePriority": []string{"catering", "decoration"},
	}
}

func TestEventDetailsCRUD(t *testing.T) {
	router, db := setupRouter(t, nil)

	w, response := performRequest(t, router, http.MethodPost, "/event-details", eventLead("marta"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	lead := dataMap(t, response)
	assert.Equal(t, true, lead["photography"])
	assert.Equal(t, false, lead["includeDrinks"])
	assert.Equal(t, []interface{}{"catering", "decoration"}, lead["servicePriority"])
	assertMoney(t, "8500", lead["budget"])
	path := fmt.Sprintf("/event-details/%d", int(lead["id"].(float64)))

	// The public web form posts to /create
	w, _ = performRequest(t, router, http.MethodPost, "/event-details/create", eventLead("lucia"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, int64(2), testutil.Count(t, db, &models.EventDetails{}))

	w, response = performRequest(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2026-06-20", dataMap(t, response)["eventDate"])

	w, response = performRequest(t, router, http.MethodPut, path, map[string]interface{}{"guestCount": 150, "includeDrinks": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := dataMap(t, response)
	assert.Equal(t, float64(150), updated["guestCount"])
	assert.Equal(t, true, updated["includeDrinks"])
	assert.Equal(t, "marta", updated["clientName"])

	w, response = performRequest(t, router, http.MethodGet, "/event-details", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, response), 2)

	w, response = performRequest(t, router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Event deleted successfully", response["message"])

	w, response = performRequest(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assertError(t, response, "NOT_FOUND", "Event not found")
}

func TestEventDetailsValidation(t *testing.T) {
	router, db := setupRouter(t, nil)

	for _, field := range []string{"clientName", "clientEmail", "clientPhone"} {
		t.Run("missing "+field, func(t *testing.T) {
			body := eventLead("nora")
			delete(body, field)

			w, response := performRequest(t, router, http.MethodPost, "/event-details", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assertError(t, response, "INVALID_REQUEST", "Invalid request data")
		})
	}
	assert.Zero(t, testutil.Count(t, db, &models.EventDetails{}))

	w, response := performRequest(t, router, http.MethodPut, "/event-details/42", eventLead("nora"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assertError(t, response, "NOT_FOUND", "Event not found")
}
