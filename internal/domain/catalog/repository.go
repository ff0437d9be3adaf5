package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByBarcode finds a product by exact barcode match. Barcodes are
	// not unique; the first match (oldest insertion) wins.
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// Search returns products whose name, category label or barcode
	// contains term (case-insensitive), ordered by name ascending.
	// An empty term matches everything.
	Search(ctx context.Context, term string) ([]Product, error)

	// FindAll returns the whole catalog ordered by name ascending
	FindAll(ctx context.Context) ([]Product, error)

	// Save persists a new product
	Save(ctx context.Context, product *Product) error

	// Update persists changes to an existing product
	Update(ctx context.Context, product *Product) error

	// Delete removes a product by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll atomically swaps the entire catalog (backup restore)
	ReplaceAll(ctx context.Context, products []Product) error
}
