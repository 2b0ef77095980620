package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/opsdrop/dropship_backend/internal/core/pricing"
	portsrepo "github.com/opsdrop/dropship_backend/internal/core/ports/repositories"
	"github.com/opsdrop/dropship_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// PricingService exposes the pricing engine to the application. The service
// itself holds no state beyond the rate repository used for the stored-rate
// fallback; every calculation is a pure function of its resolved inputs.
type PricingService struct {
	rateRepo portsrepo.ExchangeRateRepository
}

// NewPricingService creates a new PricingService.
func NewPricingService(rateRepo portsrepo.ExchangeRateRepository) *PricingService {
	return &PricingService{rateRepo: rateRepo}
}

// CalculatePrice runs the forward price calculation. When the request omits an
// exchange rate for a cross-currency pair, the latest stored rate for the pair
// is resolved first; the engine only ever sees a plain input record. A pair
// with no stored rate falls through to the engine's missing-rate error.
func (s *PricingService) CalculatePrice(ctx context.Context, req dto.CalculatePriceRequest) (*pricing.Result, error) {
	in := pricing.ApplyDefaults(req.ToPricingInput())

	if in.ExchangeRate == nil && in.BaseCurrency != in.TargetCurrency {
		stored, err := s.rateRepo.FindLatestExchangeRate(ctx, in.BaseCurrency, in.TargetCurrency)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve stored exchange rate: %w", err)
		}
		if stored != nil {
			rate := stored.Rate
			in.ExchangeRate = &rate
		}
	}

	return pricing.Calculate(in)
}

// RealizedMargin computes the margin rate achieved at a known sale price.
func (s *PricingService) RealizedMargin(ctx context.Context, req dto.RealizedMarginRequest) (decimal.Decimal, error) {
	return pricing.RealizedMarginRate(req.Cost, req.SalePrice, req.ShippingCost, req.CommissionRate)
}

// SuggestedMargin computes the margin rate required to hit a profit target.
func (s *PricingService) SuggestedMargin(ctx context.Context, req dto.SuggestedMarginRequest) (decimal.Decimal, error) {
	return pricing.SuggestedMarginRate(req.TargetProfit, req.Cost, req.ShippingCost, req.CommissionRate)
}
