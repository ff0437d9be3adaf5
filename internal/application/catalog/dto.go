package catalog

import (
	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductRequest carries the operator-editable product fields for both
// create and update operations.
type ProductRequest struct {
	Name             string           `json:"name"`
	PriceUSD         *decimal.Decimal `json:"priceUsd"`
	Stock            int              `json:"stock"`
	Category         string           `json:"category"`
	Subcategory      string           `json:"subcategory"`
	Size             string           `json:"size"`
	CostPrice        *decimal.Decimal `json:"costPrice"`
	ProfitPercentage *decimal.Decimal `json:"profitPercentage"`
	Barcode          string           `json:"barcode"`
}

// ProductResponse is the API view of a product
type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	PriceUSD         decimal.Decimal `json:"priceUsd"`
	PriceBs          decimal.Decimal `json:"priceBs"`
	Stock            int             `json:"stock"`
	Category         string          `json:"category"`
	Subcategory      string          `json:"subcategory,omitempty"`
	Size             string          `json:"size,omitempty"`
	CostPrice        decimal.Decimal `json:"costPrice"`
	ProfitPercentage decimal.Decimal `json:"profitPercentage"`
	Barcode          string          `json:"barcode,omitempty"`
}

// CategoryGroupResponse is one category bucket in the grouped catalog view
type CategoryGroupResponse struct {
	Category string            `json:"category"`
	Products []ProductResponse `json:"products"`
}

// CategoryInfoResponse describes one category for form rendering: its
// allowed subcategories and whether products carry a size/variant field.
type CategoryInfoResponse struct {
	Name            string   `json:"name"`
	Subcategories   []string `json:"subcategories,omitempty"`
	RequiresVariant bool     `json:"requiresVariant"`
}

// ToProductResponse converts a domain product to its API view
func ToProductResponse(p *catalog.Product, rate decimal.Decimal) ProductResponse {
	return ProductResponse{
		ID:               p.ID.String(),
		Name:             p.Name,
		PriceUSD:         p.PriceUSD,
		PriceBs:          p.PriceBs(rate),
		Stock:            p.Stock,
		Category:         p.Category.String(),
		Subcategory:      p.Subcategory,
		Size:             p.Size,
		CostPrice:        p.CostPrice,
		ProfitPercentage: p.ProfitPercentage,
		Barcode:          p.Barcode,
	}
}

// ToProductResponses converts a product slice to API views
func ToProductResponses(products []catalog.Product, rate decimal.Decimal) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ToProductResponse(&products[i], rate))
	}
	return out
}

func derefOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
