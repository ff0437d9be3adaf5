package checkout

import (
	"context"

	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories a
// checkout touches. Everything executed within one scope commits or rolls
// back atomically: a committed sale always pairs with its stock
// decrements, and a reversal always pairs with its stock restores.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides repository access scoped to the
// current transaction.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the transaction
	ProductRepo() catalog.ProductRepository
	// SaleRepo returns the sale repository scoped to the transaction
	SaleRepo() sales.SaleRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests with in-memory repositories.
type NoOpTransactionScope struct {
	productRepo catalog.ProductRepository
	saleRepo    sales.SaleRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(productRepo catalog.ProductRepository, saleRepo sales.SaleRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{productRepo: productRepo, saleRepo: saleRepo}
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// SaleRepo returns the sale repository
func (s *NoOpTransactionScope) SaleRepo() sales.SaleRepository {
	return s.saleRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
