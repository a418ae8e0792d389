package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/eventplanner/event-orders-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Catalog resolves order line items to their current unit price. It reads
// through whatever handle it was built with, so a Catalog created from a
// transaction prices items inside that transaction. Nothing is cached.
type Catalog struct {
	db *gorm.DB
}

// NewCatalog creates a Catalog bound to db
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// UnitPrice returns the current price of the catalog entry itemID in the
// catalog named by itemType.
func (c *Catalog) UnitPrice(ctx context.Context, itemType models.ItemType, itemID string) (decimal.Decimal, error) {
	db := c.db.WithContext(ctx)

	switch itemType {
	case models.ItemTypeProduct:
		var product models.Product
		err := db.Select("id", "price").Where("id = ?", itemID).First(&product).Error
		if err != nil {
			return decimal.Zero, lookupError(err, "Product", itemID)
		}
		return product.Price, nil

	case models.ItemTypePackage:
		id, ok := numericKey(itemID)
		if !ok {
			return decimal.Zero, itemNotFound("Package", itemID)
		}
		var pkg models.ItemPackage
		if err := db.Select("id", "price").First(&pkg, id).Error; err != nil {
			return decimal.Zero, lookupError(err, "Package", itemID)
		}
		return pkg.Price, nil

	case models.ItemTypeService:
		id, ok := numericKey(itemID)
		if !ok {
			return decimal.Zero, itemNotFound("Service", itemID)
		}
		var service models.Service
		if err := db.Select("id", "price").First(&service, id).Error; err != nil {
			return decimal.Zero, lookupError(err, "Service", itemID)
		}
		return service.Price, nil

	default:
		return decimal.Zero, errBadRequest(KindInvalidItemType, "Invalid item type: %s", itemType)
	}
}

// numericKey coerces package and service ids, which arrive as strings, to
// their integer primary key.
func numericKey(itemID string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(itemID), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func itemNotFound(typeName, itemID string) *BusinessError {
	return errNotFound(KindItemNotFound, "%s with id %s not found", typeName, itemID)
}

func lookupError(err error, typeName, itemID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return itemNotFound(typeName, itemID)
	}
	return err
}
