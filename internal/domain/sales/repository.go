package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultExchangeRate is the Bs/USD rate assumed before the operator has
// ever set one, and the fallback when a backup omits the rate.
var DefaultExchangeRate = decimal.RequireFromString("45.00")

// SaleRepository defines the persistence interface for sales
type SaleRepository interface {
	// FindByID finds a sale (with items) by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindAll returns every sale with items, newest first
	FindAll(ctx context.Context) ([]Sale, error)

	// Save persists a new sale together with its items
	Save(ctx context.Context, sale *Sale) error

	// Update persists changes to an existing sale (credit settlement)
	Update(ctx context.Context, sale *Sale) error

	// Delete removes a sale and its items (sale reversal)
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll atomically swaps the entire sale history (backup restore)
	ReplaceAll(ctx context.Context, sales []Sale) error
}

// SettingRepository stores the few operator-tunable values, currently
// just the Bs/USD exchange rate.
type SettingRepository interface {
	// GetExchangeRate returns the current rate, or the configured
	// default when none has been stored yet.
	GetExchangeRate(ctx context.Context) (decimal.Decimal, error)

	// SetExchangeRate stores a new rate. Only sales committed after the
	// change pick it up; existing sales keep their frozen rate.
	SetExchangeRate(ctx context.Context, rate decimal.Decimal) error
}
