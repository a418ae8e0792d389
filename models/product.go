package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a physical catalog item sourced from a supplier
type Product struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProductName string          `gorm:"type:varchar(100);not null;index" json:"productName" binding:"required"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	SupplierID  string          `gorm:"type:varchar(36);not null;index" json:"supplierId"`
	Supplier    *Supplier       `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"supplier,omitempty"`
	ImageKey    *string         `json:"-"`                        // S3 key of the product image
	ImageURL    *string         `gorm:"-" json:"imageUrl,omitempty"` // presigned URL, filled on read
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns a UUID when none was given
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
