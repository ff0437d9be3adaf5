package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/emtienda/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Setting is a key-value row for operator-tunable values
type Setting struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Setting) TableName() string {
	return "settings"
}

const exchangeRateKey = "exchange_rate"

// GormSettingRepository implements SettingRepository using GORM
type GormSettingRepository struct {
	db          *gorm.DB
	defaultRate decimal.Decimal
}

// SettingRepositoryOption configures a GormSettingRepository
type SettingRepositoryOption func(*GormSettingRepository)

// WithDefaultRate overrides the Bs/USD rate served before the operator
// has ever stored one. Non-positive rates are ignored.
func WithDefaultRate(rate decimal.Decimal) SettingRepositoryOption {
	return func(r *GormSettingRepository) {
		if rate.IsPositive() {
			r.defaultRate = rate
		}
	}
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB, opts ...SettingRepositoryOption) *GormSettingRepository {
	r := &GormSettingRepository{db: db, defaultRate: sales.DefaultExchangeRate}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetExchangeRate returns the stored Bs/USD rate, or the configured
// default when none has been stored yet
func (r *GormSettingRepository) GetExchangeRate(ctx context.Context) (decimal.Decimal, error) {
	var setting Setting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", exchangeRateKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.defaultRate, nil
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(setting.Value)
	if err != nil || !rate.IsPositive() {
		// A corrupt stored value must not break checkout
		return r.defaultRate, nil
	}
	return rate, nil
}

// SetExchangeRate stores a new Bs/USD rate
func (r *GormSettingRepository) SetExchangeRate(ctx context.Context, rate decimal.Decimal) error {
	setting := Setting{
		Key:       exchangeRateKey,
		Value:     rate.String(),
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

var _ sales.SettingRepository = (*GormSettingRepository)(nil)
