package dto

import (
	"github.com/opsdrop/dropship_backend/internal/core/pricing"
	"github.com/shopspring/decimal"
)

// CalculatePriceRequest carries the raw inputs for a forward price calculation.
// Numeric constraints are deliberately not expressed as binding tags: the
// engine validates the whole record and reports every violation at once, which
// a per-tag bind failure would preempt.
type CalculatePriceRequest struct {
	BaseCost       decimal.Decimal  `json:"baseCost"`
	BaseCurrency   string           `json:"baseCurrency"`
	TargetCurrency string           `json:"targetCurrency"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty"`
	MarginRate     decimal.Decimal  `json:"marginRate"`
	CommissionRate decimal.Decimal  `json:"commissionRate"`
	ShippingCost   decimal.Decimal  `json:"shippingCost"`
	RoundingUnit   decimal.Decimal  `json:"roundingUnit"`
	MinimumPrice   *decimal.Decimal `json:"minimumPrice,omitempty"`
	MaximumPrice   *decimal.Decimal `json:"maximumPrice,omitempty"`
}

// ToPricingInput converts the request into an engine input record.
func (r CalculatePriceRequest) ToPricingInput() pricing.Input {
	return pricing.Input{
		BaseCost:       r.BaseCost,
		BaseCurrency:   r.BaseCurrency,
		TargetCurrency: r.TargetCurrency,
		ExchangeRate:   r.ExchangeRate,
		MarginRate:     r.MarginRate,
		CommissionRate: r.CommissionRate,
		ShippingCost:   r.ShippingCost,
		RoundingUnit:   r.RoundingUnit,
		MinimumPrice:   r.MinimumPrice,
		MaximumPrice:   r.MaximumPrice,
	}
}

// PriceCalculationResponse is the breakdown returned for a forward calculation.
type PriceCalculationResponse struct {
	SalePrice        decimal.Decimal `json:"salePrice"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	ConvertedCost    decimal.Decimal `json:"convertedCost"`
	MarginAmount     decimal.Decimal `json:"marginAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	ShippingCost     decimal.Decimal `json:"shippingCost"`
	RoundingUnit     decimal.Decimal `json:"roundingUnit"`
}

// ToPriceCalculationResponse converts an engine result to its response DTO.
func ToPriceCalculationResponse(result *pricing.Result) PriceCalculationResponse {
	return PriceCalculationResponse{
		SalePrice:        result.SalePrice,
		Subtotal:         result.Subtotal,
		ConvertedCost:    result.ConvertedCost,
		MarginAmount:     result.MarginAmount,
		CommissionAmount: result.CommissionAmount,
		ShippingCost:     result.ShippingCost,
		RoundingUnit:     result.RoundingUnit,
	}
}

// RealizedMarginRequest asks for the margin rate achieved at a known sale price.
// Cost must already be expressed in the sale currency.
type RealizedMarginRequest struct {
	Cost           decimal.Decimal `json:"cost"`
	SalePrice      decimal.Decimal `json:"salePrice"`
	ShippingCost   decimal.Decimal `json:"shippingCost"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
}

// SuggestedMarginRequest asks for the margin rate needed to hit a profit target.
type SuggestedMarginRequest struct {
	TargetProfit   decimal.Decimal `json:"targetProfit"`
	Cost           decimal.Decimal `json:"cost"`
	ShippingCost   decimal.Decimal `json:"shippingCost"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
}

// MarginRateResponse carries a computed margin rate.
type MarginRateResponse struct {
	MarginRate decimal.Decimal `json:"marginRate"`
}
