package sales

import (
	"strings"
	"time"

	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem is a frozen copy of a product at the moment it entered the
// cart. It deliberately never re-reads live product fields: the price,
// name and category belong to the sale, not to the catalog.
type SaleItem struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	SaleID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name        string           `gorm:"type:varchar(200);not null"`
	PriceUSD    decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	Category    catalog.Category `gorm:"type:varchar(50)"`
	Subcategory string           `gorm:"type:varchar(50)"`
	Size        string           `gorm:"type:varchar(30)"`
	Quantity    int              `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// SubtotalUSD returns unit price times quantity
func (i SaleItem) SubtotalUSD() decimal.Decimal {
	return i.PriceUSD.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CreditDetails carries the extra fields of a credit sale
type CreditDetails struct {
	ClientName string
	CreditDate time.Time
}

// Sale is a committed checkout. It is immutable after creation except for
// the one-way IsPaid transition on credit sales. Deleting a sale is the
// reversal operation, handled by the checkout service.
type Sale struct {
	shared.BaseEntity
	Date  time.Time  `gorm:"not null;index"`
	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	// TotalUSD is computed once at checkout and stored; it is never
	// recomputed from the items afterwards.
	TotalUSD decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	// ExchangeRate is the Bs/USD rate in effect at checkout. Bolívar
	// amounts for this sale always use this frozen rate, never the
	// live one.
	ExchangeRate  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(30);not null"`

	// Credit fields, meaningful only when PaymentMethod is Crédito
	ClientName   string          `gorm:"type:varchar(120)"`
	CreditDate   *time.Time      `gorm:"type:date"`
	CreditAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	IsPaid       bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale commits a cart into a sale record. Items must be non-empty with
// positive quantities; credit sales require a client name.
func NewSale(items []SaleItem, method PaymentMethod, rate decimal.Decimal, credit *CreditDetails) (*Sale, error) {
	if len(items) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Unknown payment method")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Item quantity must be positive")
		}
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.SubtotalUSD())
	}

	sale := &Sale{
		BaseEntity:    shared.NewBaseEntity(),
		Date:          time.Now(),
		Items:         items,
		TotalUSD:      total,
		ExchangeRate:  rate,
		PaymentMethod: method,
	}

	if method.IsCredit() {
		if credit == nil || strings.TrimSpace(credit.ClientName) == "" {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Credit sales require a client name")
		}
		sale.ClientName = strings.TrimSpace(credit.ClientName)
		creditDate := credit.CreditDate
		if creditDate.IsZero() {
			creditDate = sale.Date
		}
		sale.CreditDate = &creditDate
		sale.CreditAmount = total
	}

	for i := range sale.Items {
		sale.Items[i].ID = uuid.New()
		sale.Items[i].SaleID = sale.ID
		sale.Items[i].CreatedAt = sale.Date
	}

	return sale, nil
}

// IsCredit reports whether the sale was paid on credit
func (s *Sale) IsCredit() bool {
	return s.PaymentMethod.IsCredit()
}

// IsOutstanding reports whether the sale is an unsettled credit
func (s *Sale) IsOutstanding() bool {
	return s.IsCredit() && !s.IsPaid
}

// MarkPaid settles a credit sale. The transition is one-way; there is no
// un-paying operation.
func (s *Sale) MarkPaid() error {
	if !s.IsCredit() {
		return shared.NewDomainError("VALIDATION_FAILED", "Only credit sales can be marked as paid")
	}
	s.IsPaid = true
	s.UpdatedAt = time.Now()
	return nil
}

// TotalBs converts the stored USD total with the frozen exchange rate.
// Changing today's rate must never move historical amounts.
func (s *Sale) TotalBs() decimal.Decimal {
	return s.TotalUSD.Mul(s.ExchangeRate)
}

// EffectiveCreditDate is the date debts are aged by: the operator-entered
// credit date when present, the sale date otherwise.
func (s *Sale) EffectiveCreditDate() time.Time {
	if s.CreditDate != nil && !s.CreditDate.IsZero() {
		return *s.CreditDate
	}
	return s.Date
}
