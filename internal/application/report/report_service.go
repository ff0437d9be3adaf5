package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// SalesReportRow is one sale in a period report. TotalBs uses the rate
// frozen into the sale, not the live one.
type SalesReportRow struct {
	Date          time.Time       `json:"date"`
	ItemsSummary  string          `json:"itemsSummary"`
	PaymentMethod string          `json:"paymentMethod"`
	ClientName    string          `json:"clientName,omitempty"`
	TotalUSD      decimal.Decimal `json:"totalUsd"`
	TotalBs       decimal.Decimal `json:"totalBs"`
}

// SalesReport aggregates the sales of one period
type SalesReport struct {
	Period      string           `json:"period"` // "daily" or "monthly"
	GeneratedAt time.Time        `json:"generatedAt"`
	Rows        []SalesReportRow `json:"rows"`
	TotalUSD    decimal.Decimal  `json:"totalUsd"`
	// TotalBs values the period total at the current rate, the number
	// the operator reconciles the register against today.
	TotalBs      decimal.Decimal `json:"totalBs"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// InventoryReportRow is one product in the valorized inventory report
type InventoryReportRow struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Subcategory  string          `json:"subcategory,omitempty"`
	Size         string          `json:"size,omitempty"`
	Stock        int             `json:"stock"`
	UnitPriceUSD decimal.Decimal `json:"unitPriceUsd"`
	// ValueUSD is the extended value: unit price times units on hand
	ValueUSD decimal.Decimal `json:"valueUsd"`
}

// InventoryReport is the valorized inventory: every product with its
// extended value, plus the total valuation.
type InventoryReport struct {
	GeneratedAt   time.Time            `json:"generatedAt"`
	Rows          []InventoryReportRow `json:"rows"`
	TotalValueUSD decimal.Decimal      `json:"totalValueUsd"`
	TotalValueBs  decimal.Decimal      `json:"totalValueBs"`
	ExchangeRate  decimal.Decimal      `json:"exchangeRate"`
}

// CreditReportRow is one outstanding debt in the credit report
type CreditReportRow struct {
	ClientName   string          `json:"clientName"`
	CreditDate   time.Time       `json:"creditDate"`
	ItemsSummary string          `json:"itemsSummary"`
	TotalUSD     decimal.Decimal `json:"totalUsd"`
	TotalBs      decimal.Decimal `json:"totalBs"` // at the sale's frozen rate
}

// CreditReport lists every outstanding credit, oldest first
type CreditReport struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Rows        []CreditReportRow `json:"rows"`
	TotalUSD    decimal.Decimal   `json:"totalUsd"`
}

// ReportService computes report projections. All reports are pure
// recomputations over the current collections; nothing is cached.
type ReportService struct {
	productRepo catalog.ProductRepository
	saleRepo    sales.SaleRepository
	settingRepo sales.SettingRepository
}

// NewReportService creates a new ReportService
func NewReportService(
	productRepo catalog.ProductRepository,
	saleRepo sales.SaleRepository,
	settingRepo sales.SettingRepository,
) *ReportService {
	return &ReportService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		settingRepo: settingRepo,
	}
}

// DailySales reports the sales of the day containing now
func (s *ReportService) DailySales(ctx context.Context, now time.Time) (*SalesReport, error) {
	return s.salesReport(ctx, now, "daily", func(d time.Time) bool {
		y1, m1, d1 := d.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	})
}

// MonthlySales reports the sales of the month containing now
func (s *ReportService) MonthlySales(ctx context.Context, now time.Time) (*SalesReport, error) {
	return s.salesReport(ctx, now, "monthly", func(d time.Time) bool {
		y1, m1, _ := d.Date()
		y2, m2, _ := now.Date()
		return y1 == y2 && m1 == m2
	})
}

func (s *ReportService) salesReport(ctx context.Context, now time.Time, period string, inPeriod func(time.Time) bool) (*SalesReport, error) {
	all, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]SalesReportRow, 0)
	total := decimal.Zero
	for i := range all {
		sale := &all[i]
		if !inPeriod(sale.Date) {
			continue
		}
		rows = append(rows, SalesReportRow{
			Date:          sale.Date,
			ItemsSummary:  summarizeItems(sale.Items),
			PaymentMethod: sale.PaymentMethod.String(),
			ClientName:    sale.ClientName,
			TotalUSD:      sale.TotalUSD,
			TotalBs:       sale.TotalBs(),
		})
		total = total.Add(sale.TotalUSD)
	}

	return &SalesReport{
		Period:       period,
		GeneratedAt:  now,
		Rows:         rows,
		TotalUSD:     total,
		TotalBs:      total.Mul(rate),
		ExchangeRate: rate,
	}, nil
}

// InventoryValuation reports every product with its extended value
func (s *ReportService) InventoryValuation(ctx context.Context) (*InventoryReport, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]InventoryReportRow, 0, len(products))
	total := decimal.Zero
	for i := range products {
		p := &products[i]
		value := p.StockValueUSD()
		rows = append(rows, InventoryReportRow{
			Name:         p.Name,
			Category:     p.Category.String(),
			Subcategory:  p.Subcategory,
			Size:         p.Size,
			Stock:        p.Stock,
			UnitPriceUSD: p.PriceUSD,
			ValueUSD:     value,
		})
		total = total.Add(value)
	}

	return &InventoryReport{
		GeneratedAt:   time.Now(),
		Rows:          rows,
		TotalValueUSD: total,
		TotalValueBs:  total.Mul(rate),
		ExchangeRate:  rate,
	}, nil
}

// PendingCredits reports every outstanding credit, oldest debt first
func (s *ReportService) PendingCredits(ctx context.Context) (*CreditReport, error) {
	all, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]*sales.Sale, 0)
	for i := range all {
		if all[i].IsOutstanding() {
			pending = append(pending, &all[i])
		}
	}
	// Oldest debt first, same ordering as the ledger view
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].EffectiveCreditDate().Before(pending[j].EffectiveCreditDate())
	})

	rows := make([]CreditReportRow, 0, len(pending))
	total := decimal.Zero
	for _, sale := range pending {
		rows = append(rows, CreditReportRow{
			ClientName:   sale.ClientName,
			CreditDate:   sale.EffectiveCreditDate(),
			ItemsSummary: summarizeItems(sale.Items),
			TotalUSD:     sale.TotalUSD,
			TotalBs:      sale.TotalBs(),
		})
		total = total.Add(sale.TotalUSD)
	}

	return &CreditReport{
		GeneratedAt: time.Now(),
		Rows:        rows,
		TotalUSD:    total,
	}, nil
}

// summarizeItems renders "2 Blusa, 1 Collar" style item summaries
func summarizeItems(items []sales.SaleItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%d %s", item.Quantity, item.Name))
	}
	return strings.Join(parts, ", ")
}
