package pricing

import (
	"fmt"

	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RealizedMarginRate recovers the margin rate actually achieved for a known
// sale price: (salePrice - salePrice*commissionRate - shippingCost - cost) / cost.
// The cost must already be expressed in the sale currency; no conversion is
// performed here.
func RealizedMarginRate(cost, salePrice, shippingCost, commissionRate decimal.Decimal) (decimal.Decimal, error) {
	if salePrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: got %s", apperrors.ErrNonPositiveSalePrice, salePrice.String())
	}
	if cost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: got %s", apperrors.ErrNonPositiveCost, cost.String())
	}

	netRevenue := salePrice.Sub(salePrice.Mul(commissionRate))
	return netRevenue.Sub(shippingCost).Sub(cost).Div(cost), nil
}

// SuggestedMarginRate derives the margin rate required to realize a target
// absolute profit after commission and shipping:
//
//	requiredRevenue = (cost + shippingCost + targetProfit) / (1 - commissionRate)
//	marginRate      = (requiredRevenue - cost) / cost
func SuggestedMarginRate(targetProfit, cost, shippingCost, commissionRate decimal.Decimal) (decimal.Decimal, error) {
	if cost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: got %s", apperrors.ErrNonPositiveCost, cost.String())
	}
	if commissionRate.GreaterThanOrEqual(one) {
		return decimal.Zero, fmt.Errorf("%w: commission rate must be below 1", apperrors.ErrValidation)
	}

	requiredRevenue := cost.Add(shippingCost).Add(targetProfit).Div(one.Sub(commissionRate))
	marginAmount := requiredRevenue.Sub(cost)
	return marginAmount.Div(cost), nil
}
