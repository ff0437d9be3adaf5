package checkout

import (
	"time"

	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// CartLineResponse is the API view of one cart line
type CartLineResponse struct {
	ProductID   string          `json:"productId"`
	Name        string          `json:"name"`
	PriceUSD    decimal.Decimal `json:"priceUsd"`
	Size        string          `json:"size,omitempty"`
	Quantity    int             `json:"quantity"`
	SubtotalUSD decimal.Decimal `json:"subtotalUsd"`
}

// CartResponse is the API view of the session cart, with totals in both
// currencies at the live exchange rate.
type CartResponse struct {
	Lines        []CartLineResponse `json:"lines"`
	TotalUSD     decimal.Decimal    `json:"totalUsd"`
	TotalBs      decimal.Decimal    `json:"totalBs"`
	ExchangeRate decimal.Decimal    `json:"exchangeRate"`
}

// CommitRequest carries the checkout parameters
type CommitRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,paymentmethod"`
	// Credit fields, required only when paying on credit
	ClientName string `json:"clientName"`
	CreditDate string `json:"creditDate"` // YYYY-MM-DD, defaults to today
}

// SaleItemResponse is the API view of one sold item
type SaleItemResponse struct {
	ProductID   string          `json:"productId"`
	Name        string          `json:"name"`
	PriceUSD    decimal.Decimal `json:"priceUsd"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Size        string          `json:"size,omitempty"`
	Quantity    int             `json:"quantity"`
}

// SaleResponse is the API view of a committed sale. Bs amounts use the
// rate frozen at checkout, never the live one.
type SaleResponse struct {
	ID            string             `json:"id"`
	Date          time.Time          `json:"date"`
	Items         []SaleItemResponse `json:"items"`
	TotalUSD      decimal.Decimal    `json:"totalUsd"`
	TotalBs       decimal.Decimal    `json:"totalBs"`
	ExchangeRate  decimal.Decimal    `json:"exchangeRate"`
	PaymentMethod string             `json:"paymentMethod"`
	ClientName    string             `json:"clientName,omitempty"`
	CreditDate    *time.Time         `json:"creditDate,omitempty"`
	CreditAmount  decimal.Decimal    `json:"creditAmount"`
	IsPaid        bool               `json:"isPaid"`
}

// ToSaleResponse converts a domain sale to its API view
func ToSaleResponse(s *sales.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:   item.ProductID.String(),
			Name:        item.Name,
			PriceUSD:    item.PriceUSD,
			Category:    item.Category.String(),
			Subcategory: item.Subcategory,
			Size:        item.Size,
			Quantity:    item.Quantity,
		})
	}

	return SaleResponse{
		ID:            s.ID.String(),
		Date:          s.Date,
		Items:         items,
		TotalUSD:      s.TotalUSD,
		TotalBs:       s.TotalBs(),
		ExchangeRate:  s.ExchangeRate,
		PaymentMethod: s.PaymentMethod.String(),
		ClientName:    s.ClientName,
		CreditDate:    s.CreditDate,
		CreditAmount:  s.CreditAmount,
		IsPaid:        s.IsPaid,
	}
}

// ToSaleResponses converts a sale slice to API views
func ToSaleResponses(list []sales.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(list))
	for i := range list {
		out = append(out, ToSaleResponse(&list[i]))
	}
	return out
}
