package services

import (
	"context"
	"errors"

	"github.com/eventplanner/event-orders-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemRequest is one requested order line
type OrderItemRequest struct {
	ItemType string            `json:"item_type"`
	ItemID   models.FlexibleID `json:"item_id"`
	Quantity int               `json:"quantity"`
	Notes    *string           `json:"notes"`
}

// PricedItems is the materialized result of pricing a list of requests
type PricedItems struct {
	Items []models.OrderItem
	Total decimal.Decimal
}

// OrderBuilder validates and prices order lines against the catalogs
type OrderBuilder struct {
	db      *gorm.DB
	catalog *Catalog
}

// NewOrderBuilder creates a builder reading through db, normally the
// transaction the aggregate is written in.
func NewOrderBuilder(db *gorm.DB) *OrderBuilder {
	return &OrderBuilder{db: db, catalog: NewCatalog(db)}
}

// Build checks that clientID resolves, then prices every request
func (b *OrderBuilder) Build(ctx context.Context, clientID string, requests []OrderItemRequest) (*PricedItems, error) {
	if len(requests) == 0 {
		return nil, ErrEmptyOrder
	}
	if clientID == "" {
		return nil, MissingField("client_id")
	}

	var client models.Client
	if err := b.db.WithContext(ctx).Select("id").Where("id = ?", clientID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	return b.PriceItems(ctx, requests)
}

// PriceItems prices requests in list order. The returned items carry no
// OrderID; the caller attaches and persists them.
func (b *OrderBuilder) PriceItems(ctx context.Context, requests []OrderItemRequest) (*PricedItems, error) {
	if len(requests) == 0 {
		return nil, ErrEmptyOrder
	}

	result := &PricedItems{
		Items: make([]models.OrderItem, 0, len(requests)),
		Total: decimal.Zero,
	}

	for i, req := range requests {
		if req.Quantity <= 0 {
			return nil, InvalidRequest("Quantity for item %d must be a positive integer", i+1)
		}

		itemType := models.ItemType(req.ItemType)
		itemID := req.ItemID.String()

		unitPrice, err := b.catalog.UnitPrice(ctx, itemType, itemID)
		if err != nil {
			return nil, err
		}

		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
		result.Items = append(result.Items, models.OrderItem{
			ItemType:  itemType,
			ItemID:    itemID,
			Quantity:  req.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
			Notes:     req.Notes,
		})
		result.Total = result.Total.Add(subtotal)
	}

	return result, nil
}
