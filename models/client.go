package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a customer placing orders
type Client struct {
	ID    string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name  string  `gorm:"type:varchar(100);not null" json:"name" binding:"required"`
	Email string  `gorm:"type:varchar(100);not null" json:"email" binding:"required"`
	Phone *string `gorm:"type:varchar(15)" json:"phone"`
}

// TableName specifies the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// BeforeCreate assigns a UUID when none was given
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
