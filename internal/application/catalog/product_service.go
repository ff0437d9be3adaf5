package catalog

import (
	"context"

	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService handles catalog business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	settingRepo sales.SettingRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, settingRepo sales.SettingRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		settingRepo: settingRepo,
	}
}

// Create validates the request and adds a new product to the catalog
func (s *ProductService) Create(ctx context.Context, req ProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(s.toInput(req))
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product, rate)
	return &response, nil
}

// Update replaces the product with the given id in place
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req ProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(s.toInput(req)); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product, rate)
	return &response, nil
}

// Delete removes a product from the catalog. Historical sales keep their
// frozen item snapshots, so no referential check against sales is needed.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// GetByID returns a single product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product, rate)
	return &response, nil
}

// List searches the catalog. An empty term matches everything; results
// come back ordered by name.
func (s *ProductService) List(ctx context.Context, term string) ([]ProductResponse, error) {
	products, err := s.productRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}

	return ToProductResponses(products, rate), nil
}

// Grouped searches the catalog and partitions the result by category,
// groups ordered alphabetically, products by name.
func (s *ProductService) Grouped(ctx context.Context, term string) ([]CategoryGroupResponse, error) {
	products, err := s.productRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}

	groups, keys := catalog.GroupByCategory(products)
	out := make([]CategoryGroupResponse, 0, len(keys))
	for _, key := range keys {
		out = append(out, CategoryGroupResponse{
			Category: key.String(),
			Products: ToProductResponses(groups[key], rate),
		})
	}
	return out, nil
}

// LookupBarcode finds a product by exact barcode match. Barcodes are not
// unique; the first match wins.
func (s *ProductService) LookupBarcode(ctx context.Context, barcode string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product, rate)
	return &response, nil
}

// Categories lists every category with its subcategories and whether the
// size/variant field applies.
func (s *ProductService) Categories() []CategoryInfoResponse {
	all := catalog.AllCategories()
	out := make([]CategoryInfoResponse, 0, len(all))
	for _, c := range all {
		out = append(out, CategoryInfoResponse{
			Name:            c.String(),
			Subcategories:   catalog.Subcategories(c),
			RequiresVariant: catalog.RequiresVariant(c),
		})
	}
	return out
}

// toInput maps the request onto a domain input, applying the suggested
// price when cost and profit are set but no explicit price was given.
// An explicit price always wins over the suggestion.
func (s *ProductService) toInput(req ProductRequest) catalog.ProductInput {
	cost := derefOrZero(req.CostPrice)
	profit := derefOrZero(req.ProfitPercentage)

	price := decimal.Zero
	if req.PriceUSD != nil {
		price = *req.PriceUSD
	} else if suggested, ok := catalog.SuggestedPrice(cost, profit); ok {
		price = suggested
	}

	return catalog.ProductInput{
		Name:             req.Name,
		PriceUSD:         price,
		Stock:            req.Stock,
		Category:         catalog.Category(req.Category),
		Subcategory:      req.Subcategory,
		Size:             req.Size,
		CostPrice:        cost,
		ProfitPercentage: profit,
		Barcode:          req.Barcode,
	}
}
