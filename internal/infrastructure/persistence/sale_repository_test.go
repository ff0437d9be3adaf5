package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/emtienda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSale(t *testing.T, method sales.PaymentMethod, credit *sales.CreditDetails) *sales.Sale {
	t.Helper()

	items := []sales.SaleItem{
		{
			ProductID: uuid.New(),
			Name:      "Blusa",
			PriceUSD:  decimal.NewFromFloat(10.00),
			Quantity:  2,
		},
	}
	sale, err := sales.NewSale(items, method, decimal.NewFromFloat(45.00), credit)
	require.NoError(t, err)
	return sale
}

func TestGormSaleRepository_SaveAndFind(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSaleRepository(db.DB)
	ctx := context.Background()

	sale := mustSale(t, sales.PaymentEfectivoUSD, nil)
	require.NoError(t, repo.Save(ctx, sale))

	t.Run("finds sale with items preloaded", func(t *testing.T) {
		found, err := repo.FindByID(ctx, sale.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, "Blusa", found.Items[0].Name)
		assert.Equal(t, 2, found.Items[0].Quantity)
		assert.True(t, found.TotalUSD.Equal(decimal.NewFromFloat(20.00)))
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormSaleRepository_FindAllNewestFirst(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSaleRepository(db.DB)
	ctx := context.Background()

	older := mustSale(t, sales.PaymentEfectivoBs, nil)
	older.Date = time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Save(ctx, older))

	newer := mustSale(t, sales.PaymentPunto, nil)
	require.NoError(t, repo.Save(ctx, newer))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)
	require.Len(t, all[0].Items, 1)
}

func TestGormSaleRepository_UpdateKeepsItems(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSaleRepository(db.DB)
	ctx := context.Background()

	sale := mustSale(t, sales.PaymentCredito, &sales.CreditDetails{ClientName: "María"})
	require.NoError(t, repo.Save(ctx, sale))

	require.NoError(t, sale.MarkPaid())
	require.NoError(t, repo.Update(ctx, sale))

	found, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, found.IsPaid)
	assert.Equal(t, "María", found.ClientName)
	require.Len(t, found.Items, 1)
}

func TestGormSaleRepository_Delete(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSaleRepository(db.DB)
	ctx := context.Background()

	sale := mustSale(t, sales.PaymentPagoMovil, nil)
	require.NoError(t, repo.Save(ctx, sale))

	require.NoError(t, repo.Delete(ctx, sale.ID))

	_, err := repo.FindByID(ctx, sale.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var itemCount int64
	require.NoError(t, db.DB.Model(&sales.SaleItem{}).Where("sale_id = ?", sale.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount, "items must go with the sale")

	t.Run("deleting again returns ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, sale.ID), shared.ErrNotFound)
	})
}

func TestGormSaleRepository_ReplaceAll(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSaleRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustSale(t, sales.PaymentEfectivoUSD, nil)))

	replacement := []sales.Sale{*mustSale(t, sales.PaymentPunto, nil)}
	require.NoError(t, repo.ReplaceAll(ctx, replacement))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, replacement[0].ID, all[0].ID)
	require.Len(t, all[0].Items, 1)
}
