package sales

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []SaleItem {
	return []SaleItem{
		{ProductID: uuid.New(), Name: "Blusa", PriceUSD: decimal.NewFromInt(10), Quantity: 2},
		{ProductID: uuid.New(), Name: "Collar", PriceUSD: decimal.NewFromFloat(7.50), Quantity: 1},
	}
}

func TestNewSale(t *testing.T) {
	rate := decimal.NewFromFloat(45.00)

	t.Run("computes and stores the total", func(t *testing.T) {
		sale, err := NewSale(testItems(), PaymentEfectivoUSD, rate, nil)
		require.NoError(t, err)
		assert.True(t, sale.TotalUSD.Equal(decimal.NewFromFloat(27.50)))
		assert.True(t, sale.ExchangeRate.Equal(rate))
		assert.False(t, sale.Date.IsZero())
		assert.Len(t, sale.Items, 2)
		for _, item := range sale.Items {
			assert.Equal(t, sale.ID, item.SaleID)
		}
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		_, err := NewSale(nil, PaymentEfectivoUSD, rate, nil)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		items := testItems()
		items[0].Quantity = 0
		_, err := NewSale(items, PaymentEfectivoUSD, rate, nil)
		assert.Error(t, err)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := NewSale(testItems(), PaymentMethod("Cheque"), rate, nil)
		assert.Error(t, err)
	})

	t.Run("cash sale carries no credit fields", func(t *testing.T) {
		sale, err := NewSale(testItems(), PaymentPunto, rate, nil)
		require.NoError(t, err)
		assert.Empty(t, sale.ClientName)
		assert.Nil(t, sale.CreditDate)
		assert.True(t, sale.CreditAmount.IsZero())
		assert.False(t, sale.IsCredit())
		assert.False(t, sale.IsOutstanding())
	})
}

func TestNewSaleCredit(t *testing.T) {
	rate := decimal.NewFromFloat(45.00)

	t.Run("requires client name", func(t *testing.T) {
		_, err := NewSale(testItems(), PaymentCredito, rate, nil)
		assert.Error(t, err)

		_, err = NewSale(testItems(), PaymentCredito, rate, &CreditDetails{ClientName: "  "})
		assert.Error(t, err)
	})

	t.Run("populates credit fields", func(t *testing.T) {
		due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		sale, err := NewSale(testItems(), PaymentCredito, rate, &CreditDetails{
			ClientName: " Ana ",
			CreditDate: due,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ana", sale.ClientName)
		require.NotNil(t, sale.CreditDate)
		assert.True(t, due.Equal(*sale.CreditDate))
		assert.True(t, sale.CreditAmount.Equal(sale.TotalUSD))
		assert.True(t, sale.IsOutstanding())
	})

	t.Run("credit date defaults to sale date", func(t *testing.T) {
		sale, err := NewSale(testItems(), PaymentCredito, rate, &CreditDetails{ClientName: "Ana"})
		require.NoError(t, err)
		require.NotNil(t, sale.CreditDate)
		assert.True(t, sale.Date.Equal(*sale.CreditDate))
		assert.True(t, sale.Date.Equal(sale.EffectiveCreditDate()))
	})
}

func TestMarkPaid(t *testing.T) {
	rate := decimal.NewFromFloat(45.00)

	t.Run("settles a credit sale", func(t *testing.T) {
		sale, _ := NewSale(testItems(), PaymentCredito, rate, &CreditDetails{ClientName: "Ana"})
		require.NoError(t, sale.MarkPaid())
		assert.True(t, sale.IsPaid)
		assert.False(t, sale.IsOutstanding())
	})

	t.Run("rejects non-credit sale", func(t *testing.T) {
		sale, _ := NewSale(testItems(), PaymentEfectivoBs, rate, nil)
		assert.Error(t, sale.MarkPaid())
	})
}

func TestTotalBsUsesFrozenRate(t *testing.T) {
	sale, err := NewSale(testItems(), PaymentCredito, decimal.NewFromFloat(40), &CreditDetails{ClientName: "Ana"})
	require.NoError(t, err)

	// 27.50 USD at the frozen rate of 40
	assert.True(t, sale.TotalBs().Equal(decimal.NewFromInt(1100)))

	// A later rate change elsewhere in the system must not move this
	// amount; TotalBs only ever reads the stored rate.
	assert.True(t, sale.TotalBs().Equal(sale.TotalUSD.Mul(sale.ExchangeRate)))
}
