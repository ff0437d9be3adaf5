package persistence

import (
	"testing"

	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestDatabase opens a fresh in-memory database with the full schema
func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(&config.DatabaseConfig{Path: ":memory:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// mustProduct builds a valid product for test fixtures
func mustProduct(t *testing.T, name, category, barcode string, price float64, stock int) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(catalog.ProductInput{
		Name:     name,
		PriceUSD: decimal.NewFromFloat(price),
		Stock:    stock,
		Category: catalog.Category(category),
		Barcode:  barcode,
	})
	require.NoError(t, err)
	return product
}

func TestNewDatabase(t *testing.T) {
	db := newTestDatabase(t)

	require.NoError(t, db.Ping())
	require.True(t, db.DB.Migrator().HasTable("products"))
	require.True(t, db.DB.Migrator().HasTable("sales"))
	require.True(t, db.DB.Migrator().HasTable("sale_items"))
	require.True(t, db.DB.Migrator().HasTable("settings"))
}
