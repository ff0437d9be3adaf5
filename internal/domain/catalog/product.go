package catalog

import (
	"strings"
	"time"

	"github.com/emtienda/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents an item in the store catalog. It is the aggregate
// root for catalog operations. Prices are kept in USD; the bolívar amount
// is always derived with the exchange rate of the moment it is needed.
type Product struct {
	shared.BaseEntity
	Name             string          `gorm:"type:varchar(200);not null"`
	PriceUSD         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Stock            int             `gorm:"not null;default:0"`
	Category         Category        `gorm:"type:varchar(50);not null;index"`
	Subcategory      string          `gorm:"type:varchar(50)"`
	Size             string          `gorm:"type:varchar(30)"` // talla/variante, clothing-like categories only
	CostPrice        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ProfitPercentage decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	// Barcode is not unique on purpose: the store reuses supplier labels and
	// duplicates do occur. Lookup returns the first match.
	Barcode string `gorm:"type:varchar(64);index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductInput carries the operator-editable fields of a product
type ProductInput struct {
	Name             string
	PriceUSD         decimal.Decimal
	Stock            int
	Category         Category
	Subcategory      string
	Size             string
	CostPrice        decimal.Decimal
	ProfitPercentage decimal.Decimal
	Barcode          string
}

// NewProduct creates a new product with a fresh id
func NewProduct(input ProductInput) (*Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity:       shared.NewBaseEntity(),
		Name:             strings.TrimSpace(input.Name),
		PriceUSD:         input.PriceUSD,
		Stock:            input.Stock,
		Category:         input.Category,
		Subcategory:      input.Subcategory,
		Size:             input.Size,
		CostPrice:        input.CostPrice,
		ProfitPercentage: input.ProfitPercentage,
		Barcode:          strings.TrimSpace(input.Barcode),
	}, nil
}

// Update replaces the editable fields in place, preserving the id
func (p *Product) Update(input ProductInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(input.Name)
	p.PriceUSD = input.PriceUSD
	p.Stock = input.Stock
	p.Category = input.Category
	p.Subcategory = input.Subcategory
	p.Size = input.Size
	p.CostPrice = input.CostPrice
	p.ProfitPercentage = input.ProfitPercentage
	p.Barcode = strings.TrimSpace(input.Barcode)
	p.UpdatedAt = time.Now()

	return nil
}

// InStock reports whether at least one unit is on hand
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// DecrementStock removes quantity units from stock. Stock never goes
// negative; a decrement past zero rejects the whole operation.
func (p *Product) DecrementStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("VALIDATION_FAILED", "Quantity must be positive")
	}
	if quantity > p.Stock {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Not enough stock on hand")
	}
	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	return nil
}

// RestoreStock returns quantity units to stock (sale reversal)
func (p *Product) RestoreStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("VALIDATION_FAILED", "Quantity must be positive")
	}
	p.Stock += quantity
	p.UpdatedAt = time.Now()
	return nil
}

// PriceBs converts the USD unit price at the given exchange rate
func (p *Product) PriceBs(rate decimal.Decimal) decimal.Decimal {
	return p.PriceUSD.Mul(rate)
}

// StockValueUSD returns unit price times units on hand
func (p *Product) StockValueUSD() decimal.Decimal {
	return p.PriceUSD.Mul(decimal.NewFromInt(int64(p.Stock)))
}

func validateInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Product name cannot be empty")
	}
	if input.PriceUSD.IsNegative() {
		return shared.NewDomainError("VALIDATION_FAILED", "Price cannot be negative")
	}
	if input.Stock < 0 {
		return shared.NewDomainError("VALIDATION_FAILED", "Stock cannot be negative")
	}
	if !input.Category.IsValid() {
		return shared.NewDomainError("VALIDATION_FAILED", "Unknown category")
	}
	return nil
}

// SuggestedPrice derives a selling price from cost and profit percentage:
// cost * (1 + pct/100), rounded to 2 decimals. The suggestion only applies
// when both inputs are positive; ok is false otherwise and the caller
// leaves the stored price untouched. Editing the price directly always
// overrides the suggestion.
func SuggestedPrice(cost, profitPercentage decimal.Decimal) (decimal.Decimal, bool) {
	if !cost.IsPositive() || !profitPercentage.IsPositive() {
		return decimal.Zero, false
	}
	factor := decimal.NewFromInt(1).Add(profitPercentage.Div(decimal.NewFromInt(100)))
	return cost.Mul(factor).Round(2), true
}
