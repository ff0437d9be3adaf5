package backup

import (
	"time"

	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/emtienda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SnapshotVersion is stamped into every exported document
const SnapshotVersion = "1.0"

// Snapshot is the full-state backup document the operator moves between
// devices. The JSON field names are part of the format and must not
// change: existing backup files depend on them.
type Snapshot struct {
	Products     []ProductSnapshot `json:"products"`
	Sales        []SaleSnapshot    `json:"sales"`
	ExchangeRate decimal.Decimal   `json:"exchangeRate"`
	Version      string            `json:"version"`
	Date         time.Time         `json:"date"`
}

// ProductSnapshot is one product in a backup document
type ProductSnapshot struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	PriceUSD         decimal.Decimal `json:"priceUsd"`
	Stock            int             `json:"stock"`
	Category         string          `json:"category"`
	Subcategory      string          `json:"subcategory,omitempty"`
	Size             string          `json:"size,omitempty"`
	CostPrice        decimal.Decimal `json:"costPrice,omitempty"`
	ProfitPercentage decimal.Decimal `json:"profitPercentage,omitempty"`
	Barcode          string          `json:"barcode,omitempty"`
}

// SaleSnapshot is one sale in a backup document
type SaleSnapshot struct {
	ID            string              `json:"id"`
	Date          time.Time           `json:"date"`
	Items         []SaleItemSnapshot  `json:"items"`
	TotalUSD      decimal.Decimal     `json:"totalUsd"`
	ExchangeRate  decimal.Decimal     `json:"exchangeRate"`
	PaymentMethod string              `json:"paymentMethod"`
	ClientName    string              `json:"clientName,omitempty"`
	CreditDate    *time.Time          `json:"creditDate,omitempty"`
	CreditAmount  decimal.Decimal     `json:"creditAmount,omitempty"`
	IsPaid        bool                `json:"isPaid,omitempty"`
}

// SaleItemSnapshot is one frozen item inside a sale snapshot
type SaleItemSnapshot struct {
	ProductID   string          `json:"productId"`
	Name        string          `json:"name"`
	PriceUSD    decimal.Decimal `json:"priceUsd"`
	Category    string          `json:"category,omitempty"`
	Subcategory string          `json:"subcategory,omitempty"`
	Size        string          `json:"size,omitempty"`
	Quantity    int             `json:"quantity"`
}

func toProductSnapshot(p *catalog.Product) ProductSnapshot {
	return ProductSnapshot{
		ID:               p.ID.String(),
		Name:             p.Name,
		PriceUSD:         p.PriceUSD,
		Stock:            p.Stock,
		Category:         p.Category.String(),
		Subcategory:      p.Subcategory,
		Size:             p.Size,
		CostPrice:        p.CostPrice,
		ProfitPercentage: p.ProfitPercentage,
		Barcode:          p.Barcode,
	}
}

func toSaleSnapshot(s *sales.Sale) SaleSnapshot {
	items := make([]SaleItemSnapshot, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, SaleItemSnapshot{
			ProductID:   item.ProductID.String(),
			Name:        item.Name,
			PriceUSD:    item.PriceUSD,
			Category:    item.Category.String(),
			Subcategory: item.Subcategory,
			Size:        item.Size,
			Quantity:    item.Quantity,
		})
	}

	return SaleSnapshot{
		ID:            s.ID.String(),
		Date:          s.Date,
		Items:         items,
		TotalUSD:      s.TotalUSD,
		ExchangeRate:  s.ExchangeRate,
		PaymentMethod: s.PaymentMethod.String(),
		ClientName:    s.ClientName,
		CreditDate:    s.CreditDate,
		CreditAmount:  s.CreditAmount,
		IsPaid:        s.IsPaid,
	}
}

// fromProductSnapshot rebuilds a domain product from a backup entry.
// Ids from foreign backups may not be UUIDs; those get a fresh id, which
// turns later reversals of their old sales into stock no-ops (same as a
// deleted product).
func fromProductSnapshot(snap ProductSnapshot, now time.Time) (*catalog.Product, error) {
	if snap.Name == "" {
		return nil, shared.ErrImportInvalid
	}
	if snap.PriceUSD.IsNegative() || snap.Stock < 0 {
		return nil, shared.ErrImportInvalid
	}

	id, err := uuid.Parse(snap.ID)
	if err != nil {
		id = uuid.New()
	}

	return &catalog.Product{
		BaseEntity: shared.BaseEntity{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:             snap.Name,
		PriceUSD:         snap.PriceUSD,
		Stock:            snap.Stock,
		Category:         catalog.Category(snap.Category),
		Subcategory:      snap.Subcategory,
		Size:             snap.Size,
		CostPrice:        snap.CostPrice,
		ProfitPercentage: snap.ProfitPercentage,
		Barcode:          snap.Barcode,
	}, nil
}

func fromSaleSnapshot(snap SaleSnapshot, now time.Time) (*sales.Sale, error) {
	if len(snap.Items) == 0 {
		return nil, shared.ErrImportInvalid
	}

	id, err := uuid.Parse(snap.ID)
	if err != nil {
		id = uuid.New()
	}

	sale := &sales.Sale{
		BaseEntity: shared.BaseEntity{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Date:          snap.Date,
		TotalUSD:      snap.TotalUSD,
		ExchangeRate:  snap.ExchangeRate,
		PaymentMethod: sales.PaymentMethod(snap.PaymentMethod),
		ClientName:    snap.ClientName,
		CreditDate:    snap.CreditDate,
		CreditAmount:  snap.CreditAmount,
		IsPaid:        snap.IsPaid,
	}

	for _, item := range snap.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			productID = uuid.Nil
		}
		sale.Items = append(sale.Items, sales.SaleItem{
			ID:          uuid.New(),
			SaleID:      id,
			ProductID:   productID,
			Name:        item.Name,
			PriceUSD:    item.PriceUSD,
			Category:    catalog.Category(item.Category),
			Subcategory: item.Subcategory,
			Size:        item.Size,
			Quantity:    item.Quantity,
			CreatedAt:   snap.Date,
		})
	}

	return sale, nil
}
