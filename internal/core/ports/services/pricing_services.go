package services

import (
	"context"

	"github.com/opsdrop/dropship_backend/internal/core/pricing"
	"github.com/opsdrop/dropship_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// PricingSvcFacade exposes the pricing engine to the rest of the application.
// All operations are stateless; nothing is persisted.
type PricingSvcFacade interface {
	// CalculatePrice runs the forward calculation. When the request omits an
	// exchange rate for a cross-currency pair, the latest stored rate for the
	// pair is used; the engine itself never performs lookups.
	CalculatePrice(ctx context.Context, req dto.CalculatePriceRequest) (*pricing.Result, error)

	// RealizedMargin computes the margin rate achieved at a known sale price.
	RealizedMargin(ctx context.Context, req dto.RealizedMarginRequest) (decimal.Decimal, error)

	// SuggestedMargin computes the margin rate required to hit a profit target.
	SuggestedMargin(ctx context.Context, req dto.SuggestedMarginRequest) (decimal.Decimal, error)
}
