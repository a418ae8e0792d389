package controllers

import (
	"net/http"

	"github.com/eventplanner/event-orders-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClientController serves /clients
type ClientController struct {
	db *gorm.DB
}

// NewClientController creates a ClientController over db
func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{db: db}
}

// ListClients handles GET /clients
func (cc *ClientController) ListClients(c *gin.Context) {
	clients := make([]models.Client, 0)
	if err := cc.db.WithContext(c.Request.Context()).Order("name ASC").Find(&clients).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, clients)
}

// GetClient handles GET /clients/:id
func (cc *ClientController) GetClient(c *gin.Context) {
	client, ok := findByKey[models.Client](c, cc.db, c.Param("id"), "Client")
	if !ok {
		return
	}

	respondSuccess(c, http.StatusOK, client)
}

// CreateClient handles POST /clients
func (cc *ClientController) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		respondValidation(c, err)
		return
	}
	client.ID = ""

	if err := cc.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, client)
}

// UpdateClient handles PUT /clients/:id, merging the body into the stored client
func (cc *ClientController) UpdateClient(c *gin.Context) {
	client, ok := findByKey[models.Client](c, cc.db, c.Param("id"), "Client")
	if !ok {
		return
	}

	id := client.ID
	if err := c.ShouldBindJSON(client); err != nil {
		respondValidation(c, err)
		return
	}
	client.ID = id

	if err := cc.db.WithContext(c.Request.Context()).Save(client).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, client)
}

// DeleteClient handles DELETE /clients/:id. The client's orders go with it.
func (cc *ClientController) DeleteClient(c *gin.Context) {
	client, ok := findByKey[models.Client](c, cc.db, c.Param("id"), "Client")
	if !ok {
		return
	}

	if err := cc.db.WithContext(c.Request.Context()).Delete(client).Error; err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Client deleted successfully")
}
