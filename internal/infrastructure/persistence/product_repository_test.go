package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProductRepository_SaveAndFind(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	product := mustProduct(t, "Blusa Floral", "Ropa", "750100000001", 12.50, 5)
	require.NoError(t, repo.Save(ctx, product))

	t.Run("finds saved product by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Blusa Floral", found.Name)
		assert.Equal(t, 5, found.Stock)
		assert.True(t, found.PriceUSD.Equal(product.PriceUSD))
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindByBarcode(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	older := mustProduct(t, "Collar Dorado", "Accesorios", "888555", 4.00, 3)
	require.NoError(t, repo.Save(ctx, older))

	// Duplicate barcode saved later must lose the lookup
	newer := mustProduct(t, "Collar Plateado", "Accesorios", "888555", 5.00, 2)
	newer.CreatedAt = older.CreatedAt.Add(time.Minute)
	require.NoError(t, repo.Save(ctx, newer))

	t.Run("oldest insertion wins on duplicate barcode", func(t *testing.T) {
		found, err := repo.FindByBarcode(ctx, "888555")
		require.NoError(t, err)
		assert.Equal(t, older.ID, found.ID)
	})

	t.Run("unknown barcode returns ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByBarcode(ctx, "000000")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("empty barcode returns ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByBarcode(ctx, "")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_Search(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	fixtures := []*catalog.Product{
		mustProduct(t, "Zapato Casual", "Calzado", "111", 20.00, 4),
		mustProduct(t, "Blusa Azul", "Ropa", "222", 10.00, 6),
		mustProduct(t, "Anillo", "Accesorios", "BLU-999", 3.00, 9),
	}
	for _, p := range fixtures {
		require.NoError(t, repo.Save(ctx, p))
	}

	t.Run("matches name case-insensitively", func(t *testing.T) {
		results, err := repo.Search(ctx, "blusa")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Blusa Azul", results[0].Name)
	})

	t.Run("matches category label", func(t *testing.T) {
		results, err := repo.Search(ctx, "calzado")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Zapato Casual", results[0].Name)
	})

	t.Run("matches barcode fragment", func(t *testing.T) {
		results, err := repo.Search(ctx, "blu-9")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Anillo", results[0].Name)
	})

	t.Run("empty term returns everything sorted by name", func(t *testing.T) {
		results, err := repo.Search(ctx, "  ")
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "Anillo", results[0].Name)
		assert.Equal(t, "Blusa Azul", results[1].Name)
		assert.Equal(t, "Zapato Casual", results[2].Name)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		results, err := repo.Search(ctx, "inexistente")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestGormProductRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	product := mustProduct(t, "Cartera", "Bolsos y Carteras", "", 15.00, 2)
	require.NoError(t, repo.Save(ctx, product))

	t.Run("update persists stock changes", func(t *testing.T) {
		require.NoError(t, product.DecrementStock(1))
		require.NoError(t, repo.Update(ctx, product))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, found.Stock)
	})

	t.Run("delete removes the product", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, product.ID))

		_, err := repo.FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deleting again returns ErrNotFound", func(t *testing.T) {
		err := repo.Delete(ctx, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_ReplaceAll(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustProduct(t, "Viejo", "Ropa", "", 1.00, 1)))

	replacement := []catalog.Product{
		*mustProduct(t, "Nuevo A", "Ropa", "", 2.00, 2),
		*mustProduct(t, "Nuevo B", "Calzado", "", 3.00, 3),
	}
	require.NoError(t, repo.ReplaceAll(ctx, replacement))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Nuevo A", all[0].Name)
	assert.Equal(t, "Nuevo B", all[1].Name)

	t.Run("replace with empty list clears the catalog", func(t *testing.T) {
		require.NoError(t, repo.ReplaceAll(ctx, nil))
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
