package sales

import (
	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one proposed purchase line: a product snapshot plus the
// quantity the operator intends to sell.
type CartLine struct {
	ProductID   uuid.UUID
	Name        string
	PriceUSD    decimal.Decimal
	Category    catalog.Category
	Subcategory string
	Size        string
	Quantity    int
}

// SubtotalUSD returns unit price times quantity
func (l CartLine) SubtotalUSD() decimal.Decimal {
	return l.PriceUSD.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the transient in-session purchase being assembled. It is never
// persisted; it is discarded on commit or process restart. Lines keep
// insertion order.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of the product into the cart, snapshotting its
// current fields. Out-of-stock products are silently ignored, and an
// existing line stops incrementing once it reaches the product's live
// stock. Both are routine soft refusals, not errors.
func (c *Cart) Add(product *catalog.Product) {
	if product.Stock <= 0 {
		return
	}

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			if c.lines[i].Quantity >= product.Stock {
				return
			}
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, CartLine{
		ProductID:   product.ID,
		Name:        product.Name,
		PriceUSD:    product.PriceUSD,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		Size:        product.Size,
		Quantity:    1,
	})
}

// Remove drops the whole line for a product. There is no partial-quantity
// decrement at this layer.
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear discards every line
func (c *Cart) Clear() {
	c.lines = nil
}

// TotalUSD sums unit price times quantity over all lines
func (c *Cart) TotalUSD() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.SubtotalUSD())
	}
	return total
}

// ToSaleItems converts the cart lines into frozen sale items
func (c *Cart) ToSaleItems() []SaleItem {
	items := make([]SaleItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, SaleItem{
			ProductID:   line.ProductID,
			Name:        line.Name,
			PriceUSD:    line.PriceUSD,
			Category:    line.Category,
			Subcategory: line.Subcategory,
			Size:        line.Size,
			Quantity:    line.Quantity,
		})
	}
	return items
}
