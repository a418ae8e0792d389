package services

import (
	"context"
	"strings"

	"github.com/eventplanner/event-orders-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultProductPage  = 1
	defaultProductLimit = 10
	maxProductLimit     = 50
)

// productSortColumns whitelists the sortable fields
var productSortColumns = map[string]string{
	"productName": "product_name",
	"price":       "price",
	"quantity":    "quantity",
}

// ProductQuery holds the raw listing parameters of GET /products
type ProductQuery struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	Search     string `form:"search"`
	MinPrice   string `form:"minPrice"`
	MaxPrice   string `form:"maxPrice"`
	SupplierID string `form:"supplierId"`
	SortBy     string `form:"sortBy"`
	SortOrder  string `form:"sortOrder"`
}

// ProductPage is one page of a product listing
type ProductPage struct {
	Products   []models.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService lists products with filters, sorting and pagination
type ProductService struct {
	db *gorm.DB
}

// NewProductService creates a ProductService over db
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// normalize clamps paging and falls back to the default sort
func (q *ProductQuery) normalize() {
	if q.Page < 1 {
		q.Page = defaultProductPage
	}
	if q.Limit < 1 {
		q.Limit = defaultProductLimit
	}
	if q.Limit > maxProductLimit {
		q.Limit = maxProductLimit
	}
	if _, ok := productSortColumns[q.SortBy]; !ok {
		q.SortBy = "productName"
	}
	if strings.ToUpper(q.SortOrder) == "DESC" {
		q.SortOrder = "DESC"
	} else {
		q.SortOrder = "ASC"
	}
}

// List returns the page of products selected by q
func (s *ProductService) List(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	q.normalize()

	query := s.db.WithContext(ctx).Model(&models.Product{})

	if search := strings.TrimSpace(q.Search); search != "" {
		query = query.Where("LOWER(product_name) LIKE LOWER(?)", "%"+search+"%")
	}
	if q.MinPrice != "" {
		minPrice, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return nil, InvalidRequest("Invalid minPrice: %s", q.MinPrice)
		}
		query = query.Where("price >= ?", minPrice)
	}
	if q.MaxPrice != "" {
		maxPrice, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return nil, InvalidRequest("Invalid maxPrice: %s", q.MaxPrice)
		}
		query = query.Where("price <= ?", maxPrice)
	}
	if q.SupplierID != "" {
		query = query.Where("supplier_id = ?", q.SupplierID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	products := make([]models.Product, 0)
	err := query.
		Preload("Supplier").
		Order(productSortColumns[q.SortBy] + " " + q.SortOrder).
		Order("id ASC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Products:   products,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: int((total + int64(q.Limit) - 1) / int64(q.Limit)),
	}, nil
}
