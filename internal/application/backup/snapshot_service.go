package backup

import (
	"context"
	"encoding/json"
	"time"

	"github.com/emtienda/backend/internal/domain/catalog"
	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/emtienda/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RestoreScope provides transactional access to everything a restore
// replaces: the catalog, the sale history and the stored exchange rate.
type RestoreScope interface {
	// Execute runs the given function within a database transaction
	Execute(ctx context.Context, fn func(repos RestoreRepositories) error) error
}

// RestoreRepositories provides repository access scoped to the
// current transaction.
type RestoreRepositories interface {
	ProductRepo() catalog.ProductRepository
	SaleRepo() sales.SaleRepository
	SettingRepo() sales.SettingRepository
}

// SnapshotService exports and restores full-state backup documents. A
// restore replaces — never merges — the three root collections, so the
// HTTP layer demands an explicit confirmation before calling it.
type SnapshotService struct {
	productRepo  catalog.ProductRepository
	saleRepo     sales.SaleRepository
	settingRepo  sales.SettingRepository
	restoreScope RestoreScope
	logger       *zap.Logger
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(
	productRepo catalog.ProductRepository,
	saleRepo sales.SaleRepository,
	settingRepo sales.SettingRepository,
	restoreScope RestoreScope,
	logger *zap.Logger,
) *SnapshotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotService{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		settingRepo:  settingRepo,
		restoreScope: restoreScope,
		logger:       logger,
	}
}

// Export builds a snapshot of the current state
func (s *SnapshotService) Export(ctx context.Context) (*Snapshot, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	saleList, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Products:     make([]ProductSnapshot, 0, len(products)),
		Sales:        make([]SaleSnapshot, 0, len(saleList)),
		ExchangeRate: rate,
		Version:      SnapshotVersion,
		Date:         time.Now(),
	}
	for i := range products {
		snapshot.Products = append(snapshot.Products, toProductSnapshot(&products[i]))
	}
	for i := range saleList {
		snapshot.Sales = append(snapshot.Sales, toSaleSnapshot(&saleList[i]))
	}

	return snapshot, nil
}

// Import validates the raw document and, when valid, atomically replaces
// the catalog, the sale history and the exchange rate with its contents.
// Anything short of a present products array aborts with IMPORT_INVALID
// and leaves current state untouched. A missing or invalid sales array
// defaults to empty; a missing rate defaults to the system default.
func (s *SnapshotService) Import(ctx context.Context, raw []byte) error {
	snapshot, err := parseSnapshot(raw)
	if err != nil {
		return err
	}

	now := time.Now()

	products := make([]catalog.Product, 0, len(snapshot.Products))
	for _, snap := range snapshot.Products {
		product, err := fromProductSnapshot(snap, now)
		if err != nil {
			return err
		}
		products = append(products, *product)
	}

	saleList := make([]sales.Sale, 0, len(snapshot.Sales))
	for _, snap := range snapshot.Sales {
		sale, err := fromSaleSnapshot(snap, now)
		if err != nil {
			// Tolerate bad sale entries the same way a missing sales
			// array is tolerated: the debt to preserve is the catalog.
			s.logger.Warn("skipping invalid sale in backup", zap.String("sale_id", snap.ID))
			continue
		}
		saleList = append(saleList, *sale)
	}

	err = s.restoreScope.Execute(ctx, func(repos RestoreRepositories) error {
		if err := repos.ProductRepo().ReplaceAll(ctx, products); err != nil {
			return err
		}
		if err := repos.SaleRepo().ReplaceAll(ctx, saleList); err != nil {
			return err
		}
		return repos.SettingRepo().SetExchangeRate(ctx, snapshot.ExchangeRate)
	})
	if err != nil {
		return err
	}

	s.logger.Info("backup restored",
		zap.Int("products", len(products)),
		zap.Int("sales", len(saleList)),
		zap.String("backup_version", snapshot.Version))

	return nil
}

// parseSnapshot applies the import validation contract on the raw JSON:
// the document must be an object with a products array; sales and
// exchangeRate degrade to defaults when absent or malformed.
func parseSnapshot(raw []byte) (*Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, shared.ErrImportInvalid
	}

	productsRaw, ok := doc["products"]
	if !ok {
		return nil, shared.ErrImportInvalid
	}

	snapshot := &Snapshot{}
	if err := json.Unmarshal(productsRaw, &snapshot.Products); err != nil {
		return nil, shared.ErrImportInvalid
	}

	if salesRaw, ok := doc["sales"]; ok {
		if err := json.Unmarshal(salesRaw, &snapshot.Sales); err != nil {
			snapshot.Sales = nil
		}
	}

	snapshot.ExchangeRate = sales.DefaultExchangeRate
	if rateRaw, ok := doc["exchangeRate"]; ok {
		var rate decimal.Decimal
		if err := json.Unmarshal(rateRaw, &rate); err == nil && rate.IsPositive() {
			snapshot.ExchangeRate = rate
		}
	}

	if versionRaw, ok := doc["version"]; ok {
		_ = json.Unmarshal(versionRaw, &snapshot.Version)
	}

	return snapshot, nil
}
