package credit

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PendingCreditResponse is one outstanding debt in the ledger view
type PendingCreditResponse struct {
	SaleID       string          `json:"saleId"`
	ClientName   string          `json:"clientName"`
	CreditDate   time.Time       `json:"creditDate"`
	Items        []ItemResponse  `json:"items"`
	TotalUSD     decimal.Decimal `json:"totalUsd"`
	TotalBs      decimal.Decimal `json:"totalBs"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// ItemResponse is one sold item inside a pending credit
type ItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// PendingListResponse is the filtered ledger plus its outstanding total
type PendingListResponse struct {
	Credits         []PendingCreditResponse `json:"credits"`
	TotalPendingUSD decimal.Decimal         `json:"totalPendingUsd"`
}

// CreditService derives the pending-credit view from the sale history and
// settles debts. It owns no state of its own; everything is recomputed
// from the sales collection.
type CreditService struct {
	saleRepo sales.SaleRepository
}

// NewCreditService creates a new CreditService
func NewCreditService(saleRepo sales.SaleRepository) *CreditService {
	return &CreditService{saleRepo: saleRepo}
}

// Pending lists unsettled credit sales whose client name contains the
// filter (case-insensitive, empty matches all), oldest debt first by
// credit date (sale date when no credit date was entered). Bolívar
// amounts use each sale's frozen rate.
func (s *CreditService) Pending(ctx context.Context, nameFilter string) (*PendingListResponse, error) {
	all, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filter := strings.ToLower(strings.TrimSpace(nameFilter))
	pending := make([]sales.Sale, 0)
	for _, sale := range all {
		if !sale.IsOutstanding() {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(sale.ClientName), filter) {
			continue
		}
		pending = append(pending, sale)
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].EffectiveCreditDate().Before(pending[j].EffectiveCreditDate())
	})

	total := decimal.Zero
	credits := make([]PendingCreditResponse, 0, len(pending))
	for i := range pending {
		sale := &pending[i]
		total = total.Add(sale.TotalUSD)

		items := make([]ItemResponse, 0, len(sale.Items))
		for _, item := range sale.Items {
			items = append(items, ItemResponse{Name: item.Name, Quantity: item.Quantity})
		}

		credits = append(credits, PendingCreditResponse{
			SaleID:       sale.ID.String(),
			ClientName:   sale.ClientName,
			CreditDate:   sale.EffectiveCreditDate(),
			Items:        items,
			TotalUSD:     sale.TotalUSD,
			TotalBs:      sale.TotalBs(),
			ExchangeRate: sale.ExchangeRate,
		})
	}

	return &PendingListResponse{
		Credits:         credits,
		TotalPendingUSD: total,
	}, nil
}

// MarkPaid settles a credit sale. One-way; there is no unmark operation.
func (s *CreditService) MarkPaid(ctx context.Context, saleID uuid.UUID) error {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return err
	}

	if err := sale.MarkPaid(); err != nil {
		return err
	}

	return s.saleRepo.Update(ctx, sale)
}
