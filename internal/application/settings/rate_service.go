package settings

import (
	"context"

	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/emtienda/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RateResponse is the API view of the exchange rate
type RateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

// RateService reads and updates the Bs/USD exchange rate. A new rate
// only affects sales committed after the change; committed sales keep
// the rate frozen into them.
type RateService struct {
	settingRepo sales.SettingRepository
}

// NewRateService creates a new RateService
func NewRateService(settingRepo sales.SettingRepository) *RateService {
	return &RateService{settingRepo: settingRepo}
}

// Get returns the current exchange rate
func (s *RateService) Get(ctx context.Context) (*RateResponse, error) {
	rate, err := s.settingRepo.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}
	return &RateResponse{Rate: rate}, nil
}

// Set stores a new exchange rate. The rate must be positive.
func (s *RateService) Set(ctx context.Context, rate decimal.Decimal) (*RateResponse, error) {
	if !rate.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Exchange rate must be positive")
	}
	if err := s.settingRepo.SetExchangeRate(ctx, rate); err != nil {
		return nil, err
	}
	return &RateResponse{Rate: rate}, nil
}
