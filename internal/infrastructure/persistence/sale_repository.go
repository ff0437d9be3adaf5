package persistence

import (
	"context"
	"errors"

	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/emtienda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale with its items by ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll returns every sale with items, newest first
func (r *GormSaleRepository) FindAll(ctx context.Context) ([]sales.Sale, error) {
	var saleList []sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("date DESC, created_at DESC").
		Find(&saleList).Error; err != nil {
		return nil, err
	}
	return saleList, nil
}

// Save persists a new sale together with its items
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// Update persists changes to the sale header. Items are frozen at commit
// time and never updated.
func (r *GormSaleRepository) Update(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Omit("Items").Save(sale).Error
}

// Delete removes a sale and its items
func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&sales.SaleItem{}, "sale_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&sales.Sale{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// ReplaceAll swaps the entire sale history. Callers wrap this in a
// restore transaction together with the catalog.
func (r *GormSaleRepository) ReplaceAll(ctx context.Context, saleList []sales.Sale) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&sales.SaleItem{}).Error; err != nil {
		return err
	}
	if err := db.Where("1 = 1").Delete(&sales.Sale{}).Error; err != nil {
		return err
	}
	if len(saleList) == 0 {
		return nil
	}
	return db.CreateInBatches(saleList, 50).Error
}

var _ sales.SaleRepository = (*GormSaleRepository)(nil)
