package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/eventplanner/event-orders-api/models"
	"github.com/eventplanner/event-orders-api/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemPackageRequest is the body of package create and update requests.
// Products is kept raw so a non-array value can be told apart from a
// malformed body.
type ItemPackageRequest struct {
	PackageName *string          `json:"packageName"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	CreatedBy   *string          `json:"createdBy"`
	Products    json.RawMessage  `json:"products"`
}

// packageProducts decodes the products array. present is false when the
// field was omitted or null.
func (r ItemPackageRequest) packageProducts() (products []models.PackageProduct, present bool, err error) {
	raw := bytes.TrimSpace(r.Products)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false, nil
	}
	if raw[0] != '[' {
		return nil, true, services.InvalidRequest("Products must be an array")
	}
	products = make([]models.PackageProduct, 0)
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, true, services.InvalidRequest("Invalid products: %v", err)
	}
	return products, true, nil
}

// apply copies every present field onto pkg
func (r ItemPackageRequest) apply(pkg *models.ItemPackage) error {
	if r.PackageName != nil {
		pkg.PackageName = *r.PackageName
	}
	if r.Price != nil {
		pkg.Price = *r.Price
	}
	if r.Description != nil {
		pkg.Description = *r.Description
	}
	if r.CreatedBy != nil {
		pkg.CreatedBy = *r.CreatedBy
	}

	products, present, err := r.packageProducts()
	if err != nil {
		return err
	}
	if present {
		pkg.Products = products
	}
	return nil
}

// ItemPackageController serves /item-packages
type ItemPackageController struct {
	db *gorm.DB
}

// NewItemPackageController creates an ItemPackageController over db
func NewItemPackageController(db *gorm.DB) *ItemPackageController {
	return &ItemPackageController{db: db}
}

// ListItemPackages handles GET /item-packages
func (pc *ItemPackageController) ListItemPackages(c *gin.Context) {
	packages := make([]models.ItemPackage, 0)
	if err := pc.db.WithContext(c.Request.Context()).Order("created_at DESC").Order("id DESC").Find(&packages).Error; err != nil {
		respondError(c, err)
		return
	}

	for i := range packages {
		normalizeProducts(&packages[i])
	}
	respondSuccess(c, http.StatusOK, packages)
}

// GetItemPackage handles GET /item-packages/:id
func (pc *ItemPackageController) GetItemPackage(c *gin.Context) {
	pkg, ok := findByID[models.ItemPackage](c, pc.db, c.Param("id"), "Item package")
	if !ok {
		return
	}

	normalizeProducts(pkg)
	respondSuccess(c, http.StatusOK, pkg)
}

// CreateItemPackage handles POST /item-packages
func (pc *ItemPackageController) CreateItemPackage(c *gin.Context) {
	var req ItemPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if req.PackageName == nil || *req.PackageName == "" {
		respondError(c, services.MissingField("packageName"))
		return
	}
	if _, present, _ := req.packageProducts(); !present {
		respondError(c, services.InvalidRequest("Products must be an array"))
		return
	}

	var pkg models.ItemPackage
	if err := req.apply(&pkg); err != nil {
		respondError(c, err)
		return
	}

	if err := pc.db.WithContext(c.Request.Context()).Create(&pkg).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, pkg)
}

// UpdateItemPackage handles PUT /item-packages/:id
func (pc *ItemPackageController) UpdateItemPackage(c *gin.Context) {
	pkg, ok := findByID[models.ItemPackage](c, pc.db, c.Param("id"), "Item package")
	if !ok {
		return
	}

	var req ItemPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if req.PackageName != nil && *req.PackageName == "" {
		respondError(c, services.MissingField("packageName"))
		return
	}
	if err := req.apply(pkg); err != nil {
		respondError(c, err)
		return
	}
	normalizeProducts(pkg)

	if err := pc.db.WithContext(c.Request.Context()).Save(pkg).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, pkg)
}

// DeleteItemPackage handles DELETE /item-packages/:id
func (pc *ItemPackageController) DeleteItemPackage(c *gin.Context) {
	pkg, ok := findByID[models.ItemPackage](c, pc.db, c.Param("id"), "Item package")
	if !ok {
		return
	}

	if err := pc.db.WithContext(c.Request.Context()).Delete(pkg).Error; err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Item package deleted successfully")
}

func normalizeProducts(pkg *models.ItemPackage) {
	if pkg.Products == nil {
		pkg.Products = []models.PackageProduct{}
	}
}
