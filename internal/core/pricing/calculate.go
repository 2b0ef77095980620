package pricing

import (
	"fmt"

	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Calculate runs the full forward path: default filling, validation, currency
// conversion and the sale-price calculation. It returns either a complete
// Result or an error; the only case where a returned Result deviates from the
// computed price is the minimum-price clamp, which is documented on
// calculateSalePrice.
func Calculate(in Input) (*Result, error) {
	in = ApplyDefaults(in)
	if err := Validate(in); err != nil {
		return nil, err
	}

	converted, err := Convert(in.BaseCost, in.BaseCurrency, in.TargetCurrency, in.ExchangeRate)
	if err != nil {
		return nil, err
	}

	return calculateSalePrice(in, converted)
}

// calculateSalePrice derives the final sale price from a validated input and
// the cost already converted into the target currency.
//
// Commission is charged against the gross sale price, not the subtotal: the
// commission-inclusive price P satisfies P - P*commissionRate = subtotal, so
// after the platform deducts its cut the seller retains exactly
// cost + margin + shipping. Rounding always goes up to the next multiple of
// the rounding unit so truncation never eats into the margin.
//
// Bounds: when the rounded price falls below minimumPrice, the price is
// clamped to the floor and the reported margin becomes the residual
// minimumPrice - cost - commission - shipping. The commission amount is
// carried over from the unclamped calculation, so the clamped breakdown may
// not sum exactly to the sale price. The clamp branch also returns before the
// maximum-price check runs, so the floor takes precedence over the ceiling.
// Both quirks are long-standing behavior; keep them unless the settlement
// contract changes.
func calculateSalePrice(in Input, converted decimal.Decimal) (*Result, error) {
	marginAmount := converted.Mul(in.MarginRate)
	subtotal := converted.Add(marginAmount).Add(in.ShippingCost)

	grossPrice := subtotal.Div(one.Sub(in.CommissionRate))
	commissionAmount := grossPrice.Sub(subtotal)

	salePrice := grossPrice.Div(in.RoundingUnit).Ceil().Mul(in.RoundingUnit)

	result := &Result{
		SalePrice:        salePrice,
		Subtotal:         subtotal,
		ConvertedCost:    converted,
		MarginAmount:     marginAmount,
		CommissionAmount: commissionAmount,
		ShippingCost:     in.ShippingCost,
		RoundingUnit:     in.RoundingUnit,
	}

	if in.MinimumPrice != nil && salePrice.LessThan(*in.MinimumPrice) {
		result.SalePrice = *in.MinimumPrice
		result.MarginAmount = in.MinimumPrice.Sub(converted).Sub(commissionAmount).Sub(in.ShippingCost)
		return result, nil
	}

	if in.MaximumPrice != nil && salePrice.GreaterThan(*in.MaximumPrice) {
		return nil, fmt.Errorf("%w: computed %s, maximum %s",
			apperrors.ErrPriceExceedsMaximum, salePrice.String(), in.MaximumPrice.String())
	}

	return result, nil
}
