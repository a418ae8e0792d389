package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/eventplanner/event-orders-api/models"
	"github.com/eventplanner/event-orders-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBuilder_Build(t *testing.T) {
	db := testutil.NewTestDB(t)
	client := testutil.CreateClient(t, db, "ana")
	product := testutil.CreateProduct(t, db, "roses", "19.99")
	pkg := testutil.CreatePackage(t, db, "birthday", "120.00")
	service := testutil.CreateService(t, db, "photography", "75.50")
	notes := "white ribbon"

	priced, err := NewOrderBuilder(db).Build(context.Background(), client.ID, []OrderItemRequest{
		{ItemType: "product", ItemID: models.FlexibleID(product.ID), Quantity: 3, Notes: &notes},
		{ItemType: "package", ItemID: models.FlexibleID(fmt.Sprint(pkg.ID)), Quantity: 1},
		{ItemType: "service", ItemID: models.FlexibleID(fmt.Sprint(service.ID)), Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, priced.Items, 3)

	// Items keep request order
	assert.Equal(t, models.ItemTypeProduct, priced.Items[0].ItemType)
	assert.Equal(t, product.ID, priced.Items[0].ItemID)
	assert.Equal(t, &notes, priced.Items[0].Notes)
	assertDecimal(t, "19.99", priced.Items[0].UnitPrice)
	assertDecimal(t, "59.97", priced.Items[0].Subtotal)

	assert.Equal(t, models.ItemTypePackage, priced.Items[1].ItemType)
	assertDecimal(t, "120", priced.Items[1].Subtotal)

	assert.Equal(t, models.ItemTypeService, priced.Items[2].ItemType)
	assertDecimal(t, "151", priced.Items[2].Subtotal)

	assertDecimal(t, "330.97", priced.Total)
	for _, item := range priced.Items {
		assert.Zero(t, item.OrderID, "builder never assigns an order")
	}
}

func TestOrderBuilder_Errors(t *testing.T) {
	db := testutil.NewTestDB(t)
	client := testutil.CreateClient(t, db, "ana")
	product := testutil.CreateProduct(t, db, "roses", "10.00")
	builder := NewOrderBuilder(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		clientID string
		items    []OrderItemRequest
		wantKind ErrorKind
	}{
		{"no items", client.ID, nil, KindEmptyOrder},
		{"empty items", client.ID, []OrderItemRequest{}, KindEmptyOrder},
		{"missing client", "", []OrderItemRequest{{ItemType: "product", ItemID: models.FlexibleID(product.ID), Quantity: 1}}, KindMissingField},
		{"unknown client", "9b7c1d2e-0000-0000-0000-000000000000", []OrderItemRequest{{ItemType: "product", ItemID: models.FlexibleID(product.ID), Quantity: 1}}, KindClientNotFound},
		{"zero quantity", client.ID, []OrderItemRequest{{ItemType: "product", ItemID: models.FlexibleID(product.ID), Quantity: 0}}, KindInvalidRequest},
		{"negative quantity", client.ID, []OrderItemRequest{{ItemType: "product", ItemID: models.FlexibleID(product.ID), Quantity: -2}}, KindInvalidRequest},
		{"unknown item", client.ID, []OrderItemRequest{{ItemType: "package", ItemID: "999", Quantity: 1}}, KindItemNotFound},
		{"unknown item type", client.ID, []OrderItemRequest{{ItemType: "voucher", ItemID: "1", Quantity: 1}}, KindInvalidItemType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priced, err := builder.Build(ctx, tt.clientID, tt.items)
			require.Error(t, err)
			assert.Nil(t, priced)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestOrderBuilder_StopsAtFirstBadItem(t *testing.T) {
	db := testutil.NewTestDB(t)
	product := testutil.CreateProduct(t, db, "roses", "10.00")

	_, err := NewOrderBuilder(db).PriceItems(context.Background(), []OrderItemRequest{
		{ItemType: "product", ItemID: models.FlexibleID(product.ID), Quantity: 1},
		{ItemType: "service", ItemID: "404", Quantity: 1},
	})
	require.Error(t, err)
	assert.Equal(t, "Service with id 404 not found", err.Error())
}
