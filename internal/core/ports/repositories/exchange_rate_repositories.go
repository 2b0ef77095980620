package repositories

import (
	"context"

	"github.com/opsdrop/dropship_backend/internal/core/domain"
)

// ExchangeRateRepository defines persistence operations for exchange rates.
type ExchangeRateRepository interface {
	// SaveExchangeRate persists a new exchange rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// FindLatestExchangeRate retrieves the most recently effective rate for a
	// directional currency pair. Returns apperrors.ErrNotFound when absent.
	FindLatestExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}
