package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable catalog service (catering, photography, ...)
type Service struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name" binding:"required"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive    *bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
