package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByBarcode finds a product by exact barcode match. Barcodes are not
// unique; the oldest insertion wins.
func (r *GormProductRepository) FindByBarcode(ctx context.Context, barcode string) (*catalog.Product, error) {
	if barcode == "" {
		return nil, shared.ErrNotFound
	}
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Where("barcode = ?", barcode).
		Order("created_at ASC").
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Search returns products whose name, category or barcode contains term,
// case-insensitive, ordered by name ascending
func (r *GormProductRepository) Search(ctx context.Context, term string) ([]catalog.Product, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Product{})

	term = strings.TrimSpace(term)
	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(barcode) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var products []catalog.Product
	if err := query.Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAll returns the whole catalog ordered by name ascending
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save persists a new product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update persists changes to an existing product
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product by ID
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ReplaceAll swaps the entire catalog. Callers wrap this in a restore
// transaction together with the sale history.
func (r *GormProductRepository) ReplaceAll(ctx context.Context, products []catalog.Product) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&catalog.Product{}).Error; err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}
	return db.CreateInBatches(products, 100).Error
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
