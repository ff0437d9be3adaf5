package persistence

import (
	"context"

	"github.com/emtienda/backend/internal/application/backup"
	"github.com/emtienda/backend/internal/application/checkout"
	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormTransactionScope implements the checkout TransactionScope using
// GORM transactions. Stock decrements and the sale insert commit or
// roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. If the
// function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos checkout.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides repositories scoped to the
// current transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// SaleRepo returns the sale repository scoped to the current transaction
func (r *gormTransactionalRepositories) SaleRepo() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

var _ checkout.TransactionScope = (*GormTransactionScope)(nil)
var _ checkout.TransactionalRepositories = (*gormTransactionalRepositories)(nil)

// GormRestoreScope implements the backup RestoreScope using GORM
// transactions. A failed restore leaves catalog, sale history and the
// stored rate untouched.
type GormRestoreScope struct {
	db *gorm.DB
}

// NewGormRestoreScope creates a new GormRestoreScope
func NewGormRestoreScope(db *gorm.DB) *GormRestoreScope {
	return &GormRestoreScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormRestoreScope) Execute(ctx context.Context, fn func(repos backup.RestoreRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRestoreRepositories{tx: tx})
	})
}

// gormRestoreRepositories provides repositories scoped to the current
// restore transaction
type gormRestoreRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormRestoreRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// SaleRepo returns the sale repository scoped to the current transaction
func (r *gormRestoreRepositories) SaleRepo() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// SettingRepo returns the setting repository scoped to the current transaction
func (r *gormRestoreRepositories) SettingRepo() sales.SettingRepository {
	return NewGormSettingRepository(r.tx)
}

var _ backup.RestoreScope = (*GormRestoreScope)(nil)
var _ backup.RestoreRepositories = (*gormRestoreRepositories)(nil)
