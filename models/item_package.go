package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PackageProduct is one product entry bundled in an item package
type PackageProduct struct {
	ProductID FlexibleID `json:"productId"`
	Quantity  int        `json:"quantity"`
}

// ItemPackage is a priced bundle of products. The bundle contents are stored
// as a JSON column and are not foreign keyed.
type ItemPackage struct {
	ID          uint                                `gorm:"primaryKey" json:"id"`
	PackageName string                              `gorm:"not null" json:"packageName" binding:"required"`
	Price       decimal.Decimal                     `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string                              `gorm:"type:text;not null" json:"description"`
	CreatedBy   string                              `gorm:"not null" json:"createdBy"`
	Products    datatypes.JSONSlice[PackageProduct] `gorm:"not null" json:"products"`
	CreatedAt   time.Time                           `json:"createdAt"`
	UpdatedAt   time.Time                           `json:"updatedAt"`
}

// TableName specifies the table name for the ItemPackage model
func (ItemPackage) TableName() string {
	return "item_packages"
}
