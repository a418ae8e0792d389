package controllers

import (
	"net/http"

	"github.com/eventplanner/event-orders-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EventDetailsController serves /event-details, the event planning leads
type EventDetailsController struct {
	db *gorm.DB
}

// NewEventDetailsController creates an EventDetailsController over db
func NewEventDetailsController(db *gorm.DB) *EventDetailsController {
	return &EventDetailsController{db: db}
}

// ListEventDetails handles GET /event-details, newest lead first
func (ec *EventDetailsController) ListEventDetails(c *gin.Context) {
	leads := make([]models.EventDetails, 0)
	if err := ec.db.WithContext(c.Request.Context()).Order("created_at DESC").Order("id DESC").Find(&leads).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, leads)
}

// GetEventDetails handles GET /event-details/:id
func (ec *EventDetailsController) GetEventDetails(c *gin.Context) {
	lead, ok := findByID[models.EventDetails](c, ec.db, c.Param("id"), "Event")
	if !ok {
		return
	}

	respondSuccess(c, http.StatusOK, lead)
}

// CreateEventDetails handles POST /event-details and POST /event-details/create
func (ec *EventDetailsController) CreateEventDetails(c *gin.Context) {
	var lead models.EventDetails
	if err := c.ShouldBindJSON(&lead); err != nil {
		respondValidation(c, err)
		return
	}
	lead.ID = 0

	if err := ec.db.WithContext(c.Request.Context()).Create(&lead).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, lead)
}

// UpdateEventDetails handles PUT /event-details/:id
func (ec *EventDetailsController) UpdateEventDetails(c *gin.Context) {
	lead, ok := findByID[models.EventDetails](c, ec.db, c.Param("id"), "Event")
	if !ok {
		return
	}

	id, createdAt := lead.ID, lead.CreatedAt
	if err := c.ShouldBindJSON(lead); err != nil {
		respondValidation(c, err)
		return
	}
	lead.ID, lead.CreatedAt = id, createdAt

	if err := ec.db.WithContext(c.Request.Context()).Save(lead).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, lead)
}

// DeleteEventDetails handles DELETE /event-details/:id
func (ec *EventDetailsController) DeleteEventDetails(c *gin.Context) {
	lead, ok := findByID[models.EventDetails](c, ec.db, c.Param("id"), "Event")
	if !ok {
		return
	}

	if err := ec.db.WithContext(c.Request.Context()).Delete(lead).Error; err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Event deleted successfully")
}
