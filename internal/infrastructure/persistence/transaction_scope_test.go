package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/emtienda/backend/internal/application/backup"
	"github.com/emtienda/backend/internal/application/checkout"
	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	productRepo := NewGormProductRepository(db.DB)
	product := mustProduct(t, "Vestido", "Ropa", "", 25.00, 10)
	require.NoError(t, productRepo.Save(ctx, product))

	scope := NewGormTransactionScope(db.DB)
	boom := errors.New("boom")

	err := scope.Execute(ctx, func(repos checkout.TransactionalRepositories) error {
		p, err := repos.ProductRepo().FindByID(ctx, product.ID)
		if err != nil {
			return err
		}
		if err := p.DecrementStock(4); err != nil {
			return err
		}
		if err := repos.ProductRepo().Update(ctx, p); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Stock write inside the failed transaction must not be visible
	found, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, found.Stock)
}

func TestGormTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	productRepo := NewGormProductRepository(db.DB)
	saleRepo := NewGormSaleRepository(db.DB)

	product := mustProduct(t, "Gorra", "Accesorios", "", 8.00, 6)
	require.NoError(t, productRepo.Save(ctx, product))

	sale := mustSale(t, sales.PaymentEfectivoUSD, nil)

	scope := NewGormTransactionScope(db.DB)
	err := scope.Execute(ctx, func(repos checkout.TransactionalRepositories) error {
		p, err := repos.ProductRepo().FindByID(ctx, product.ID)
		if err != nil {
			return err
		}
		if err := p.DecrementStock(2); err != nil {
			return err
		}
		if err := repos.ProductRepo().Update(ctx, p); err != nil {
			return err
		}
		return repos.SaleRepo().Save(ctx, sale)
	})
	require.NoError(t, err)

	found, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, found.Stock)

	saved, err := saleRepo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Len(t, saved.Items, 1)
}

func TestGormRestoreScope_RollsBackOnError(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	productRepo := NewGormProductRepository(db.DB)
	require.NoError(t, productRepo.Save(ctx, mustProduct(t, "Original", "Ropa", "", 5.00, 1)))

	scope := NewGormRestoreScope(db.DB)
	boom := errors.New("boom")

	err := scope.Execute(ctx, func(repos backup.RestoreRepositories) error {
		if err := repos.ProductRepo().ReplaceAll(ctx, []catalog.Product{
			*mustProduct(t, "Importado", "Calzado", "", 9.00, 3),
		}); err != nil {
			return err
		}
		if err := repos.SettingRepo().SetExchangeRate(ctx, decimal.NewFromFloat(99.00)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	all, err := productRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Original", all[0].Name)

	rate, err := NewGormSettingRepository(db.DB).GetExchangeRate(ctx)
	require.NoError(t, err)
	assert.True(t, rate.Equal(sales.DefaultExchangeRate))
}
