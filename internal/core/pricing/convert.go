package pricing

import (
	"fmt"

	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Convert maps an amount from baseCurrency to targetCurrency using the
// caller-supplied rate. The rate is a direct multiplicative factor oriented
// base->target; supplying the correct directional rate is the caller's
// responsibility. For a same-currency pair the amount is returned unchanged
// and any supplied rate is ignored.
func Convert(amount decimal.Decimal, baseCurrency, targetCurrency string, rate *decimal.Decimal) (decimal.Decimal, error) {
	if baseCurrency == targetCurrency {
		return amount, nil
	}
	if rate == nil || rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: %s->%s", apperrors.ErrMissingExchangeRate, baseCurrency, targetCurrency)
	}
	return amount.Mul(*rate), nil
}
