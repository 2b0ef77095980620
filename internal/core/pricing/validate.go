package pricing

import (
	"fmt"

	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Validate checks a defaulted input against its declared constraints. Every
// violated field is reported; the caller gets the complete list in a single
// *apperrors.ValidationError rather than failing on the first problem.
//
// An absent exchange rate on a cross-currency input is deliberately not a
// violation here: presence is the converter's contract and surfaces as
// ErrMissingExchangeRate from the calculation itself.
func Validate(in Input) error {
	var violations []apperrors.FieldViolation
	add := func(field, message string) {
		violations = append(violations, apperrors.FieldViolation{Field: field, Message: message})
	}

	if in.BaseCost.LessThanOrEqual(decimal.Zero) {
		add("baseCost", "must be a positive number")
	}
	if !IsSupportedCurrency(in.BaseCurrency) {
		add("baseCurrency", fmt.Sprintf("must be one of %v", SupportedCurrencies()))
	}
	if !IsSupportedCurrency(in.TargetCurrency) {
		add("targetCurrency", fmt.Sprintf("must be one of %v", SupportedCurrencies()))
	}
	if in.ExchangeRate != nil && in.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		add("exchangeRate", "must be positive when supplied")
	}
	if in.MarginRate.IsNegative() || in.MarginRate.GreaterThan(one) {
		add("marginRate", "must be between 0 and 1")
	}
	if in.CommissionRate.IsNegative() || in.CommissionRate.GreaterThan(maxCommissionRate) {
		add("commissionRate", "must be between 0 and 0.3")
	}
	if in.ShippingCost.IsNegative() {
		add("shippingCost", "must not be negative")
	}
	if in.RoundingUnit.LessThan(one) {
		add("roundingUnit", "must be at least 1")
	}
	if in.MinimumPrice != nil && in.MinimumPrice.IsNegative() {
		add("minimumPrice", "must not be negative")
	}
	if in.MaximumPrice != nil && in.MaximumPrice.IsNegative() {
		add("maximumPrice", "must not be negative")
	}

	if len(violations) > 0 {
		return apperrors.NewValidationError(violations)
	}
	return nil
}
