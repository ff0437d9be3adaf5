package credit

import (
	"context"
	"testing"
	"time"

	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/emtienda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSaleRepository is a mock implementation of SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context) ([]sales.Sale, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) Update(ctx context.Context, sale *sales.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSaleRepository) ReplaceAll(ctx context.Context, saleList []sales.Sale) error {
	args := m.Called(ctx, saleList)
	return args.Error(0)
}

func creditSale(t *testing.T, client string, creditDate string, total string) sales.Sale {
	t.Helper()
	item := sales.SaleItem{
		ProductID: uuid.New(),
		Name:      "Blusa",
		PriceUSD:  decimal.RequireFromString(total),
		Quantity:  1,
	}
	credit := &sales.CreditDetails{ClientName: client}
	if creditDate != "" {
		date, err := time.Parse("2006-01-02", creditDate)
		require.NoError(t, err)
		credit.CreditDate = date
	}
	sale, err := sales.NewSale([]sales.SaleItem{item}, sales.PaymentCredito, decimal.RequireFromString("45.00"), credit)
	require.NoError(t, err)
	return *sale
}

func cashSale(t *testing.T, total string) sales.Sale {
	t.Helper()
	item := sales.SaleItem{
		ProductID: uuid.New(),
		Name:      "Gorra",
		PriceUSD:  decimal.RequireFromString(total),
		Quantity:  1,
	}
	sale, err := sales.NewSale([]sales.SaleItem{item}, sales.PaymentPunto, decimal.RequireFromString("45.00"), nil)
	require.NoError(t, err)
	return *sale
}

func TestCreditService_Pending(t *testing.T) {
	t.Run("lists outstanding credits oldest first with running total", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		service := NewCreditService(saleRepo)

		newer := creditSale(t, "Ana", "2026-08-20", "15.00")
		older := creditSale(t, "María", "2026-08-01", "10.00")
		paid := creditSale(t, "Carla", "2026-07-01", "99.00")
		require.NoError(t, paid.MarkPaid())

		saleRepo.On("FindAll", mock.Anything).Return([]sales.Sale{newer, older, paid, cashSale(t, "5.00")}, nil)

		resp, err := service.Pending(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, resp.Credits, 2)
		assert.Equal(t, "María", resp.Credits[0].ClientName)
		assert.Equal(t, "Ana", resp.Credits[1].ClientName)
		assert.True(t, resp.TotalPendingUSD.Equal(decimal.RequireFromString("25.00")))
	})

	t.Run("filters by client name case-insensitively", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		service := NewCreditService(saleRepo)

		saleRepo.On("FindAll", mock.Anything).Return([]sales.Sale{
			creditSale(t, "María Pérez", "2026-08-01", "10.00"),
			creditSale(t, "Ana", "2026-08-02", "20.00"),
		}, nil)

		resp, err := service.Pending(context.Background(), "marí")
		require.NoError(t, err)
		require.Len(t, resp.Credits, 1)
		assert.Equal(t, "María Pérez", resp.Credits[0].ClientName)
		assert.True(t, resp.TotalPendingUSD.Equal(decimal.RequireFromString("10.00")))
	})

	t.Run("uses sale date when no credit date was entered", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		service := NewCreditService(saleRepo)

		sale := creditSale(t, "Ana", "", "20.00")
		saleRepo.On("FindAll", mock.Anything).Return([]sales.Sale{sale}, nil)

		resp, err := service.Pending(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, resp.Credits, 1)
		assert.Equal(t, sale.Date.Format("2006-01-02"), resp.Credits[0].CreditDate.Format("2006-01-02"))
	})

	t.Run("converts with each sale's frozen rate", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		service := NewCreditService(saleRepo)

		sale := creditSale(t, "Ana", "2026-08-01", "10.00")
		saleRepo.On("FindAll", mock.Anything).Return([]sales.Sale{sale}, nil)

		resp, err := service.Pending(context.Background(), "")
		require.NoError(t, err)
		assert.True(t, resp.Credits[0].TotalBs.Equal(decimal.RequireFromString("450.00")))
	})
}

func TestCreditService_MarkPaid(t *testing.T) {
	t.Run("settles a credit sale and persists it", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		service := NewCreditService(saleRepo)

		sale := creditSale(t, "María", "2026-08-01", "10.00")
		saleRepo.On("FindByID", mock.Anything, sale.ID).Return(&sale, nil)
		saleRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *sales.Sale) bool {
			return s.IsPaid
		})).Return(nil)

		require.NoError(t, service.MarkPaid(context.Background(), sale.ID))
		saleRepo.AssertExpectations(t)
	})

	t.Run("rejects non-credit sales", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		service := NewCreditService(saleRepo)

		sale := cashSale(t, "5.00")
		saleRepo.On("FindByID", mock.Anything, sale.ID).Return(&sale, nil)

		err := service.MarkPaid(context.Background(), sale.ID)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	})

	t.Run("unknown sale returns NOT_FOUND", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		service := NewCreditService(saleRepo)

		id := uuid.New()
		saleRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, service.MarkPaid(context.Background(), id), shared.ErrNotFound)
	})
}
