package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier provides the products sold in the catalog
type Supplier struct {
	ID      string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name    string  `gorm:"type:varchar(100);not null" json:"name" binding:"required"`
	Email   string  `gorm:"type:varchar(100);not null" json:"email" binding:"required"`
	Phone   *string `gorm:"type:varchar(15)" json:"phone"`
	Address *string `gorm:"type:text" json:"address"`
}

// TableName specifies the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}

// BeforeCreate assigns a UUID when none was given
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
