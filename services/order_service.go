package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/eventplanner/event-orders-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateOrderInput is the body of an order creation request
type CreateOrderInput struct {
	ClientID         string             `json:"client_id"`
	OrderItems       []OrderItemRequest `json:"order_items"`
	RecipientName    string             `json:"recipientName"`
	SenderName       string             `json:"senderName"`
	Allergies        *string            `json:"allergies"`
	CardMessage      string             `json:"cardMessage"`
	DeliveryAddress  string             `json:"deliveryAddress"`
	DeliveryLocation *string            `json:"deliveryLocation"`
	ReferenceContact string             `json:"referenceContact"`
}

// UpdateOrderInput is a partial order update. Absent or empty fields leave
// the stored value untouched.
type UpdateOrderInput struct {
	Status           *string            `json:"status"`
	OrderItems       []OrderItemRequest `json:"order_items"`
	RecipientName    string             `json:"recipientName"`
	SenderName       string             `json:"senderName"`
	Allergies        string             `json:"allergies"`
	CardMessage      string             `json:"cardMessage"`
	DeliveryAddress  string             `json:"deliveryAddress"`
	DeliveryLocation string             `json:"deliveryLocation"`
	ReferenceContact string             `json:"referenceContact"`
}

// OrderService owns the persisted order aggregate
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates an OrderService over db
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Create validates, prices and persists a new pending order with its items
// and details in one transaction, then returns the hydrated aggregate.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if len(input.OrderItems) == 0 {
		return nil, ErrEmptyOrder
	}
	if err := input.validateDetails(); err != nil {
		return nil, err
	}

	var orderID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		priced, err := NewOrderBuilder(tx).Build(ctx, input.ClientID, input.OrderItems)
		if err != nil {
			return err
		}

		order := models.Order{
			ClientID: input.ClientID,
			Status:   models.OrderStatusPending,
			Total:    priced.Total,
			Items:    priced.Items,
			Details: &models.OrderDetails{
				RecipientName:    input.RecipientName,
				SenderName:       input.SenderName,
				Allergies:        input.Allergies,
				CardMessage:      input.CardMessage,
				DeliveryAddress:  input.DeliveryAddress,
				DeliveryLocation: input.DeliveryLocation,
				ReferenceContact: input.ReferenceContact,
			},
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, orderID)
}

func (input CreateOrderInput) validateDetails() error {
	required := []struct {
		field string
		value string
	}{
		{"recipientName", input.RecipientName},
		{"senderName", input.SenderName},
		{"cardMessage", input.CardMessage},
		{"deliveryAddress", input.DeliveryAddress},
		{"referenceContact", input.ReferenceContact},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return MissingField(r.field)
		}
	}
	return nil
}

// Update applies a partial update under a row lock. A non-empty item list
// replaces every current item and the total.
func (s *OrderService) Update(ctx context.Context, id uint, input UpdateOrderInput) (*models.Order, error) {
	if input.Status != nil && *input.Status != "" && !models.OrderStatus(*input.Status).IsValid() {
		return nil, ErrInvalidStatus
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := lockOrder(tx, id)
		if err != nil {
			return err
		}

		if input.Status != nil && *input.Status != "" {
			order.Status = models.OrderStatus(*input.Status)
		}

		if len(input.OrderItems) > 0 {
			priced, err := NewOrderBuilder(tx).PriceItems(ctx, input.OrderItems)
			if err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			for i := range priced.Items {
				priced.Items[i].OrderID = order.ID
			}
			if err := tx.Create(&priced.Items).Error; err != nil {
				return err
			}
			order.Total = priced.Total
		}

		if err := tx.Omit(clause.Associations).Save(order).Error; err != nil {
			return err
		}

		return mergeDetails(tx, order.ID, input)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// mergeDetails overwrites the stored details with every non-empty field of input
func mergeDetails(tx *gorm.DB, orderID uint, input UpdateOrderInput) error {
	var details models.OrderDetails
	err := tx.Where("order_id = ?", orderID).First(&details).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Orders always carry details; nothing to merge into otherwise
		return nil
	}
	if err != nil {
		return err
	}

	changed := false
	set := func(dst *string, value string) {
		if value != "" {
			*dst = value
			changed = true
		}
	}
	setOptional := func(dst **string, value string) {
		if value != "" {
			v := value
			*dst = &v
			changed = true
		}
	}

	set(&details.RecipientName, input.RecipientName)
	set(&details.SenderName, input.SenderName)
	setOptional(&details.Allergies, input.Allergies)
	set(&details.CardMessage, input.CardMessage)
	set(&details.DeliveryAddress, input.DeliveryAddress)
	setOptional(&details.DeliveryLocation, input.DeliveryLocation)
	set(&details.ReferenceContact, input.ReferenceContact)

	if !changed {
		return nil
	}
	return tx.Save(&details).Error
}

// UpdateStatus overwrites only the status of an order
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	if status == "" {
		return nil, MissingField("Status")
	}
	if !models.OrderStatus(status).IsValid() {
		return nil, ErrInvalidStatus
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := lockOrder(tx, id)
		if err != nil {
			return err
		}
		return tx.Model(order).Update("status", models.OrderStatus(status)).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Get returns the hydrated aggregate for id
func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := hydrate(s.db.WithContext(ctx)).First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// List returns orders matching filter, newest created first
func (s *OrderService) List(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	query := hydrate(s.db.WithContext(ctx))

	if filter.ClientID != "" {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil {
		query = query.Where("created_at BETWEEN ? AND ?", *filter.CreatedFrom, *filter.CreatedTo)
	}

	orders := make([]models.Order, 0)
	if err := query.Order("created_at DESC").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByClient returns every order of an existing client
func (s *OrderService) ListByClient(ctx context.Context, clientID string) ([]models.Order, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrClientNotFound
	}
	return s.List(ctx, OrderFilter{ClientID: clientID})
}

// ListByStatus returns every order currently in status
func (s *OrderService) ListByStatus(ctx context.Context, status string) ([]models.Order, error) {
	if !models.OrderStatus(status).IsValid() {
		return nil, ErrInvalidStatus
	}
	return s.List(ctx, OrderFilter{Status: models.OrderStatus(status)})
}

// Delete removes an order with its items and details
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := lockOrder(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderDetails{}).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
}

// lockOrder loads the order header with SELECT ... FOR UPDATE
func lockOrder(tx *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func hydrate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Client").
		Preload("Details")
}

// OrderFilter narrows an order listing. The created range applies only when
// both bounds are set and is inclusive on both ends.
type OrderFilter struct {
	ClientID    string
	Status      models.OrderStatus
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

const dateOnly = "2006-01-02"

// ParseOrderFilter builds an OrderFilter from raw query values
func ParseOrderFilter(clientID, status, createdStart, createdEnd string) (OrderFilter, error) {
	filter := OrderFilter{ClientID: strings.TrimSpace(clientID)}

	if status != "" {
		if !models.OrderStatus(status).IsValid() {
			return OrderFilter{}, ErrInvalidStatus
		}
		filter.Status = models.OrderStatus(status)
	}

	switch {
	case createdStart == "" && createdEnd == "":
		return filter, nil
	case createdStart == "":
		return OrderFilter{}, MissingField("created_at_start")
	case createdEnd == "":
		return OrderFilter{}, MissingField("created_at_end")
	}

	from, _, err := parseBound(createdStart)
	if err != nil {
		return OrderFilter{}, InvalidRequest("Invalid created_at_start: %s", createdStart)
	}
	to, dateOnlyEnd, err := parseBound(createdEnd)
	if err != nil {
		return OrderFilter{}, InvalidRequest("Invalid created_at_end: %s", createdEnd)
	}
	if dateOnlyEnd {
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	filter.CreatedFrom = &from
	filter.CreatedTo = &to
	return filter, nil
}

// parseBound accepts RFC 3339 timestamps and plain dates, both read as UTC
// when no offset is given.
func parseBound(raw string) (time.Time, bool, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dateOnly, raw); err == nil {
		return t.UTC(), true, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), false, nil
}
