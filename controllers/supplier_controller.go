package controllers

import (
	"net/http"

	"github.com/eventplanner/event-orders-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SupplierController serves /suppliers
type SupplierController struct {
	db *gorm.DB
}

// NewSupplierController creates a SupplierController over db
func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{db: db}
}

// ListSuppliers handles GET /suppliers
func (sc *SupplierController) ListSuppliers(c *gin.Context) {
	suppliers := make([]models.Supplier, 0)
	if err := sc.db.WithContext(c.Request.Context()).Order("name ASC").Find(&suppliers).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, suppliers)
}

// GetSupplier handles GET /suppliers/:id
func (sc *SupplierController) GetSupplier(c *gin.Context) {
	supplier, ok := findByKey[models.Supplier](c, sc.db, c.Param("id"), "Supplier")
	if !ok {
		return
	}

	respondSuccess(c, http.StatusOK, supplier)
}

// CreateSupplier handles POST /suppliers
func (sc *SupplierController) CreateSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		respondValidation(c, err)
		return
	}
	supplier.ID = ""

	if err := sc.db.WithContext(c.Request.Context()).Create(&supplier).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, supplier)
}

// UpdateSupplier handles PUT /suppliers/:id
func (sc *SupplierController) UpdateSupplier(c *gin.Context) {
	supplier, ok := findByKey[models.Supplier](c, sc.db, c.Param("id"), "Supplier")
	if !ok {
		return
	}

	id := supplier.ID
	if err := c.ShouldBindJSON(supplier); err != nil {
		respondValidation(c, err)
		return
	}
	supplier.ID = id

	if err := sc.db.WithContext(c.Request.Context()).Save(supplier).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, supplier)
}

// DeleteSupplier handles DELETE /suppliers/:id. Its products are removed by
// the store cascade.
func (sc *SupplierController) DeleteSupplier(c *gin.Context) {
	supplier, ok := findByKey[models.Supplier](c, sc.db, c.Param("id"), "Supplier")
	if !ok {
		return
	}

	if err := sc.db.WithContext(c.Request.Context()).Delete(supplier).Error; err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Supplier deleted successfully")
}
