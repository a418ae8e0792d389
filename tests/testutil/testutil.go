package testutil

import (
	"fmt"
	"os"
	"testing"

	"github.com/eventplanner/event-orders-api/config"
	"github.com/eventplanner/event-orders-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RequireTestEnvironment ensures that tests are running in the test environment.
// This prevents accidental execution of tests against production or development databases.
// It will fail the test immediately if GO_ENV is not set to "test".
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to prevent data loss. Current GO_ENV=%q. Set GO_ENV=test before running tests.", env)
	}
}

// RequireTestEnvironmentOrSkip is similar to RequireTestEnvironment but skips the test
// instead of failing it. Use this for optional tests that should only run in test environment.
func RequireTestEnvironmentOrSkip(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Skipf("Skipping test: GO_ENV must be 'test' (current: %q)", env)
	}
}

// NewTestDB opens a migrated in-memory SQLite database with foreign keys on.
// The store lives on a single connection and is closed with the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.ConnectDatabase(&config.Config{
		DatabaseURL:    ":memory:",
		DatabaseDriver: config.DriverSQLite,
		DBMaxOpenConns: 1,
		LogLevel:       "silent",
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateClient inserts a client named name
func CreateClient(t *testing.T, db *gorm.DB, name string) models.Client {
	t.Helper()

	client := models.Client{Name: name, Email: fmt.Sprintf("%s@example.com", name)}
	mustCreate(t, db, &client)
	return client
}

// CreateSupplier inserts a supplier named name
func CreateSupplier(t *testing.T, db *gorm.DB, name string) models.Supplier {
	t.Helper()

	supplier := models.Supplier{Name: name, Email: fmt.Sprintf("%s@example.com", name)}
	mustCreate(t, db, &supplier)
	return supplier
}

// CreateProduct inserts a product with its own supplier
func CreateProduct(t *testing.T, db *gorm.DB, name, price string) models.Product {
	t.Helper()

	supplier := CreateSupplier(t, db, "supplier-"+name)
	return CreateProductFrom(t, db, supplier.ID, name, price, 10)
}

// CreateProductFrom inserts a product sourced from supplierID
func CreateProductFrom(t *testing.T, db *gorm.DB, supplierID, name, price string, quantity int) models.Product {
	t.Helper()

	product := models.Product{
		ProductName: name,
		Price:       decimal.RequireFromString(price),
		Quantity:    quantity,
		SupplierID:  supplierID,
	}
	mustCreate(t, db, &product)
	return product
}

// CreatePackage inserts an item package priced at price
func CreatePackage(t *testing.T, db *gorm.DB, name, price string) models.ItemPackage {
	t.Helper()

	pkg := models.ItemPackage{
		PackageName: name,
		Price:       decimal.RequireFromString(price),
		Description: name + " bundle",
		CreatedBy:   "tests",
		Products:    []models.PackageProduct{},
	}
	mustCreate(t, db, &pkg)
	return pkg
}

// CreateService inserts a service priced at price
func CreateService(t *testing.T, db *gorm.DB, name, price string) models.Service {
	t.Helper()

	service := models.Service{
		Name:        name,
		Description: name + " service",
		Price:       decimal.RequireFromString(price),
	}
	mustCreate(t, db, &service)
	return service
}

// Count returns the number of rows of model
func Count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()

	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to seed %T: %v", value, err)
	}
}
