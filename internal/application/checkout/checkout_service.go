package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/emtienda/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CheckoutService owns the single session cart and turns it into sale
// records. The register serves one operator, so there is exactly one cart
// per process; it lives in memory and is lost on restart.
//
// Stock is checked when items enter the cart and again by the domain
// decrement at commit. There is no optimistic-concurrency handling across
// carts: with a single operator there is only ever one cart. Adding
// multi-session support would require version stamps on products.
type CheckoutService struct {
	productRepo catalog.ProductRepository
	saleRepo    sales.SaleRepository
	settingRepo sales.SettingRepository
	txScope     TransactionScope

	mu   sync.Mutex
	cart *sales.Cart
}

// NewCheckoutService creates a new CheckoutService with an empty cart
func NewCheckoutService(
	productRepo catalog.ProductRepository,
	saleRepo sales.SaleRepository,
	settingRepo sales.SettingRepository,
	txScope TransactionScope,
) *CheckoutService {
	return &CheckoutService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		settingRepo: settingRepo,
		txScope:     txScope,
		cart:        sales.NewCart(),
	}
}

// AddToCart puts one unit of the product into the cart. Out-of-stock
// products and increments past live stock are silent no-ops.
func (s *CheckoutService) AddToCart(ctx context.Context, productID uuid.UUID) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cart.Add(product)
	s.mu.Unlock()

	return s.ViewCart(ctx)
}

// AddScanned resolves a scanned barcode to a product and adds it to the
// cart. Unknown codes return NOT_FOUND so the caller can fall back to
// treating the scan as a search term. With duplicate barcodes the first
// match wins.
func (s *CheckoutService) AddScanned(ctx context.Context, barcode string) (*CartResponse, error) {
	product, err := s.productRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cart.Add(product)
	s.mu.Unlock()

	return s.ViewCart(ctx)
}

// RemoveFromCart drops the whole line for a product
func (s *CheckoutService) RemoveFromCart(ctx context.Context, productID uuid.UUID) (*CartResponse, error) {
	s.mu.Lock()
	s.cart.Remove(productID)
	s.mu.Unlock()

	return s.ViewCart(ctx)
}

// ViewCart returns the cart lines with totals in both currencies at the
// live exchange rate.
func (s *CheckoutService) ViewCart(ctx context.Context) (*CartResponse, error) {
	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	lines := s.cart.Lines()
	total := s.cart.TotalUSD()
	s.mu.Unlock()

	out := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, CartLineResponse{
			ProductID:   line.ProductID.String(),
			Name:        line.Name,
			PriceUSD:    line.PriceUSD,
			Size:        line.Size,
			Quantity:    line.Quantity,
			SubtotalUSD: line.SubtotalUSD(),
		})
	}

	return &CartResponse{
		Lines:        out,
		TotalUSD:     total,
		TotalBs:      total.Mul(rate),
		ExchangeRate: rate,
	}, nil
}

// Commit turns the cart into a sale: every referenced product's stock is
// decremented and exactly one sale record is appended, atomically. On
// validation failure nothing mutates and the cart stays as it was. The
// live exchange rate is frozen into the sale. Success clears the cart.
func (s *CheckoutService) Commit(ctx context.Context, req CommitRequest) (*SaleResponse, error) {
	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	credit, err := parseCreditDetails(req)
	if err != nil {
		return nil, err
	}

	sale, err := sales.NewSale(s.cart.ToSaleItems(), sales.PaymentMethod(req.PaymentMethod), rate, credit)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, item := range sale.Items {
			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if err := product.DecrementStock(item.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Update(ctx, product); err != nil {
				return err
			}
		}
		return repos.SaleRepo().Save(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	s.cart.Clear()

	response := ToSaleResponse(sale)
	return &response, nil
}

// Reverse cancels a committed sale: each item's quantity goes back to the
// matching live product and the record is deleted. Products deleted since
// the sale are skipped; their stock cannot be restored. Hard delete, no
// audit trail.
func (s *CheckoutService) Reverse(ctx context.Context, saleID uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByID(ctx, saleID)
		if err != nil {
			return err
		}

		for _, item := range sale.Items {
			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if err := product.RestoreStock(item.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Update(ctx, product); err != nil {
				return err
			}
		}

		return repos.SaleRepo().Delete(ctx, saleID)
	})
}

// ListSales returns the sale history, newest first
func (s *CheckoutService) ListSales(ctx context.Context) ([]SaleResponse, error) {
	list, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToSaleResponses(list), nil
}

func parseCreditDetails(req CommitRequest) (*sales.CreditDetails, error) {
	if !sales.PaymentMethod(req.PaymentMethod).IsCredit() {
		return nil, nil
	}

	credit := &sales.CreditDetails{ClientName: req.ClientName}
	if req.CreditDate != "" {
		date, err := time.Parse("2006-01-02", req.CreditDate)
		if err != nil {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Credit date must be YYYY-MM-DD")
		}
		credit.CreditDate = date
	}
	return credit, nil
}
