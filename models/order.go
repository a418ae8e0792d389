package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status an order may be persisted with
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// IsValid reports whether s is one of the known order statuses
func (s OrderStatus) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ItemType names the catalog an order item is priced from
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypePackage ItemType = "package"
	ItemTypeService ItemType = "service"
)

// Order is the aggregate root: header, line items and delivery details.
type Order struct {
	ID        uint            `gorm:"primaryKey" json:"order_id"`
	ClientID  string          `gorm:"type:varchar(36);not null;index" json:"client_id"`
	Client    *Client         `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"client,omitempty"`
	Status    OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	Details   *OrderDetails   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderDetails"`
	CreatedAt time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a priced line of an order. UnitPrice is a snapshot taken when
// the item was added and never follows later catalog changes.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"order_item_id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ItemType  ItemType        `gorm:"type:varchar(20);not null" json:"item_type"`
	ItemID    string          `gorm:"type:varchar(36);not null" json:"item_id"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Notes     *string         `gorm:"type:text" json:"notes"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderDetails holds recipient and delivery information, one per order
type OrderDetails struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	OrderID          uint    `gorm:"not null;uniqueIndex" json:"order_id"`
	RecipientName    string  `gorm:"not null" json:"recipientName"`
	SenderName       string  `gorm:"not null" json:"senderName"`
	Allergies        *string `json:"allergies"`
	CardMessage      string  `gorm:"type:text;not null" json:"cardMessage"`
	DeliveryAddress  string  `gorm:"not null" json:"deliveryAddress"`
	DeliveryLocation *string `json:"deliveryLocation"`
	ReferenceContact string  `gorm:"not null" json:"referenceContact"`
}

// TableName specifies the table name for the OrderDetails model
func (OrderDetails) TableName() string {
	return "order_details"
}
