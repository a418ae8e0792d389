package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/eventplanner/event-orders-api/models"
	"github.com/eventplanner/event-orders-api/services"
	"github.com/eventplanner/event-orders-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const productImagePrefix = "products"

// ProductController serves /products. images may be nil when image storage
// is not configured.
type ProductController struct {
	db       *gorm.DB
	products *services.ProductService
	images   services.ImageService
}

// NewProductController creates a ProductController
func NewProductController(db *gorm.DB, images services.ImageService) *ProductController {
	return &ProductController{
		db:       db,
		products: services.NewProductService(db),
		images:   images,
	}
}

// ListProducts handles GET /products with search, price, supplier filters,
// sorting and pagination
func (pc *ProductController) ListProducts(c *gin.Context) {
	var query services.ProductQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidation(c, err)
		return
	}

	page, err := pc.products.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	for i := range page.Products {
		pc.attachImageURL(c.Request.Context(), &page.Products[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusSuccess,
		"data":   page.Products,
		"total":  page.Total,
		"pagination": gin.H{
			"currentPage": page.Page,
			"limit":       page.Limit,
			"totalPages":  page.TotalPages,
		},
	})
}

// GetProduct handles GET /products/:id
func (pc *ProductController) GetProduct(c *gin.Context) {
	var product models.Product
	err := pc.db.WithContext(c.Request.Context()).Preload("Supplier").Where("id = ?", c.Param("id")).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, services.NotFound("Product"))
		} else {
			respondError(c, err)
		}
		return
	}

	pc.attachImageURL(c.Request.Context(), &product)
	respondSuccess(c, http.StatusOK, product)
}

// CreateProduct handles POST /products. The supplier must exist.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondValidation(c, err)
		return
	}
	product.ID = ""
	product.Supplier = nil

	if product.SupplierID == "" {
		respondError(c, services.MissingField("supplierId"))
		return
	}
	if _, ok := findByKey[models.Supplier](c, pc.db, product.SupplierID, "Supplier"); !ok {
		return
	}

	if err := pc.db.WithContext(c.Request.Context()).Create(&product).Error; err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id. A changed supplier is validated.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	product, ok := findByKey[models.Product](c, pc.db, c.Param("id"), "Product")
	if !ok {
		return
	}

	id, supplierID := product.ID, product.SupplierID
	if err := c.ShouldBindJSON(product); err != nil {
		respondValidation(c, err)
		return
	}
	product.ID = id
	product.Supplier = nil

	if product.SupplierID == "" {
		product.SupplierID = supplierID
	}
	if product.SupplierID != supplierID {
		if _, ok := findByKey[models.Supplier](c, pc.db, product.SupplierID, "Supplier"); !ok {
			return
		}
	}

	if err := pc.db.WithContext(c.Request.Context()).Save(product).Error; err != nil {
		respondError(c, err)
		return
	}

	pc.attachImageURL(c.Request.Context(), product)
	respondSuccess(c, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id and removes its stored image
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	product, ok := findByKey[models.Product](c, pc.db, c.Param("id"), "Product")
	if !ok {
		return
	}

	if err := pc.db.WithContext(c.Request.Context()).Delete(product).Error; err != nil {
		respondError(c, err)
		return
	}

	pc.deleteImage(c.Request.Context(), product.ImageKey)
	respondMessage(c, "Product deleted successfully")
}

// UploadProductImage handles POST /products/:id/image (multipart field "image")
func (pc *ProductController) UploadProductImage(c *gin.Context) {
	if pc.images == nil {
		respondError(c, services.ErrStorageUnavailable)
		return
	}

	product, ok := findByKey[models.Product](c, pc.db, c.Param("id"), "Product")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, &utils.FileUploadError{
			Code:    "MISSING_FILE",
			Message: "Image file is required",
		})
		return
	}

	ctx := c.Request.Context()
	key, err := pc.images.UploadImage(ctx, productImagePrefix, fileHeader)
	if err != nil {
		respondError(c, err)
		return
	}

	// Update writes the new key through product.ImageKey, so keep the value
	var previous string
	if product.ImageKey != nil {
		previous = *product.ImageKey
	}
	if err := pc.db.WithContext(ctx).Model(product).Update("image_key", key).Error; err != nil {
		pc.deleteImage(ctx, &key)
		respondError(c, err)
		return
	}
	product.ImageKey = &key
	if previous != "" && previous != key {
		pc.deleteImage(ctx, &previous)
	}

	pc.attachImageURL(ctx, product)
	respondSuccess(c, http.StatusOK, product)
}

// attachImageURL fills ImageURL from the stored key. Failures only drop the URL.
func (pc *ProductController) attachImageURL(ctx context.Context, product *models.Product) {
	if pc.images == nil || product.ImageKey == nil || *product.ImageKey == "" {
		return
	}

	url, err := pc.images.GetImageURL(ctx, *product.ImageKey)
	if err != nil {
		log.Printf("warning: failed to load image URL for product %s: %v", product.ID, err)
		return
	}
	product.ImageURL = &url
}

func (pc *ProductController) deleteImage(ctx context.Context, key *string) {
	if pc.images == nil || key == nil || *key == "" {
		return
	}
	if err := pc.images.DeleteImage(ctx, *key); err != nil {
		log.Printf("warning: failed to delete image %s: %v", *key, err)
	}
}
