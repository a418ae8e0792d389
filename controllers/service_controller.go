package controllers

import (
	"net/http"

	"github.com/eventplanner/event-orders-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ServiceController serves /services
type ServiceController struct {
	db *gorm.DB
}

// NewServiceController creates a ServiceController over db
func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{db: db}
}

// ListServices handles GET /services
func (sc *ServiceController) ListServices(c *gin.Context) {
	catalog := make([]models.Service, 0)
	if err := sc.db.WithContext(c.Request.Context()).Order("name ASC").Order("id ASC").Find(&catalog).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, catalog)
}

// GetService handles GET /services/:id
func (sc *ServiceController) GetService(c *gin.Context) {
	service, ok := findByID[models.Service](c, sc.db, c.Param("id"), "Service")
	if !ok {
		return
	}

	respondSuccess(c, http.StatusOK, service)
}

// CreateService handles POST /services. Services are active unless the
// body says otherwise.
func (sc *ServiceController) CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		respondValidation(c, err)
		return
	}
	service.ID = 0
	if service.IsActive == nil {
		active := true
		service.IsActive = &active
	}

	if err := sc.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, service)
}

// UpdateService handles PUT /services/:id
func (sc *ServiceController) UpdateService(c *gin.Context) {
	service, ok := findByID[models.Service](c, sc.db, c.Param("id"), "Service")
	if !ok {
		return
	}

	id, createdAt := service.ID, service.CreatedAt
	if err := c.ShouldBindJSON(service); err != nil {
		respondValidation(c, err)
		return
	}
	service.ID, service.CreatedAt = id, createdAt

	if err := sc.db.WithContext(c.Request.Context()).Save(service).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, service)
}

// DeleteService handles DELETE /services/:id
func (sc *ServiceController) DeleteService(c *gin.Context) {
	service, ok := findByID[models.Service](c, sc.db, c.Param("id"), "Service")
	if !ok {
		return
	}

	if err := sc.db.WithContext(c.Request.Context()).Delete(service).Error; err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Service deleted successfully")
}
