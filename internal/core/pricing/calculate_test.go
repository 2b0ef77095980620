package pricing_test

import (
	"testing"

	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/opsdrop/dropship_backend/internal/core/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

// baseInput is the reference scenario: cost 100 CNY sold in CNY with
// 30% margin, 10% commission, shipping 10, rounding unit 10.
func baseInput() pricing.Input {
	return pricing.Input{
		BaseCost:       d("100"),
		BaseCurrency:   pricing.CurrencyCNY,
		TargetCurrency: pricing.CurrencyCNY,
		MarginRate:     d("0.3"),
		CommissionRate: d("0.1"),
		ShippingCost:   d("10"),
		RoundingUnit:   d("10"),
	}
}

func TestCalculate_ReferenceScenario(t *testing.T) {
	result, err := pricing.Calculate(baseInput())
	require.NoError(t, err)

	assert.True(t, result.ConvertedCost.Equal(d("100")), "convertedCost = %s", result.ConvertedCost)
	assert.True(t, result.MarginAmount.Equal(d("30")), "marginAmount = %s", result.MarginAmount)
	assert.True(t, result.Subtotal.Equal(d("140")), "subtotal = %s", result.Subtotal)
	// gross price 140/0.9 ~= 155.56 rounds up to the next multiple of 10
	assert.True(t, result.SalePrice.Equal(d("160")), "salePrice = %s", result.SalePrice)
	assert.True(t, result.CommissionAmount.Round(2).Equal(d("15.56")), "commissionAmount = %s", result.CommissionAmount)
	assert.True(t, result.ShippingCost.Equal(d("10")))
	assert.True(t, result.RoundingUnit.Equal(d("10")))
}

func TestCalculate_CrossCurrencyAppliesRate(t *testing.T) {
	in := baseInput()
	in.BaseCurrency = pricing.CurrencyCNY
	in.TargetCurrency = pricing.CurrencyKRW
	in.ExchangeRate = dp("190")

	result, err := pricing.Calculate(in)
	require.NoError(t, err)

	assert.True(t, result.ConvertedCost.Equal(d("19000")), "convertedCost = %s", result.ConvertedCost)
}

func TestCalculate_MissingExchangeRateFails(t *testing.T) {
	in := baseInput()
	in.TargetCurrency = pricing.CurrencyKRW
	in.ExchangeRate = nil

	result, err := pricing.Calculate(in)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrMissingExchangeRate)
}

func TestCalculate_SameCurrencyIgnoresSuppliedRate(t *testing.T) {
	in := baseInput()
	in.ExchangeRate = dp("5")

	result, err := pricing.Calculate(in)
	require.NoError(t, err)

	assert.True(t, result.ConvertedCost.Equal(in.BaseCost), "rate must be ignored for same-currency input")
}

func TestCalculate_ZeroCommission(t *testing.T) {
	in := baseInput()
	in.CommissionRate = decimal.Zero

	result, err := pricing.Calculate(in)
	require.NoError(t, err)

	assert.True(t, result.CommissionAmount.IsZero(), "commissionAmount = %s", result.CommissionAmount)
	// with no commission the pre-rounding price is exactly the subtotal
	gross := result.Subtotal.Add(result.CommissionAmount)
	assert.True(t, gross.Equal(result.Subtotal))
	assert.True(t, result.SalePrice.Equal(d("140")), "salePrice = %s", result.SalePrice)
}

func TestCalculate_CommissionStrictlyIncreasesGrossPrice(t *testing.T) {
	low := baseInput()
	low.CommissionRate = d("0.05")
	high := baseInput()
	high.CommissionRate = d("0.2")

	lowResult, err := pricing.Calculate(low)
	require.NoError(t, err)
	highResult, err := pricing.Calculate(high)
	require.NoError(t, err)

	lowGross := lowResult.Subtotal.Add(lowResult.CommissionAmount)
	highGross := highResult.Subtotal.Add(highResult.CommissionAmount)
	assert.True(t, highGross.GreaterThan(lowGross), "gross %s should exceed %s", highGross, lowGross)
}

func TestCalculate_SalePriceIsMultipleOfRoundingUnit(t *testing.T) {
	tests := []struct {
		name string
		unit string
	}{
		{name: "unit 10", unit: "10"},
		{name: "unit 100", unit: "100"},
		{name: "unit 1", unit: "1"},
		{name: "unit 500", unit: "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			in.RoundingUnit = d(tt.unit)

			result, err := pricing.Calculate(in)
			require.NoError(t, err)

			remainder := result.SalePrice.Mod(result.RoundingUnit)
			assert.True(t, remainder.IsZero(), "salePrice %s not a multiple of %s", result.SalePrice, result.RoundingUnit)
			assert.False(t, result.SalePrice.IsNegative())
		})
	}
}

func TestCalculate_RoundingNeverGoesDown(t *testing.T) {
	result, err := pricing.Calculate(baseInput())
	require.NoError(t, err)

	gross := result.Subtotal.Add(result.CommissionAmount)
	assert.True(t, result.SalePrice.GreaterThanOrEqual(gross), "rounded price %s below gross %s", result.SalePrice, gross)
}

func TestCalculate_MinimumPriceClamp(t *testing.T) {
	in := baseInput()
	in.MinimumPrice = dp("200")

	result, err := pricing.Calculate(in)
	require.NoError(t, err)

	assert.True(t, result.SalePrice.Equal(d("200")), "salePrice = %s", result.SalePrice)
	// reported margin is the residual at the floor: 200 - 100 - commission - 10,
	// with the commission amount carried over from the unclamped calculation
	expectedMargin := d("200").Sub(d("100")).Sub(result.CommissionAmount).Sub(d("10"))
	assert.True(t, result.MarginAmount.Equal(expectedMargin), "marginAmount = %s", result.MarginAmount)
	assert.True(t, result.MarginAmount.Round(2).Equal(d("74.44")))
	assert.True(t, result.CommissionAmount.Round(2).Equal(d("15.56")), "commission must not be recomputed at the clamped price")
}

func TestCalculate_MinimumPriceClampSkipsCeilingCheck(t *testing.T) {
	in := baseInput()
	in.MinimumPrice = dp("200")
	in.MaximumPrice = dp("150")

	// the floor fires first and returns immediately, so the ceiling below the
	// clamped price is never evaluated
	result, err := pricing.Calculate(in)
	require.NoError(t, err)
	assert.True(t, result.SalePrice.Equal(d("200")))
}

func TestCalculate_MaximumPriceRejects(t *testing.T) {
	in := baseInput()
	in.MaximumPrice = dp("150")

	result, err := pricing.Calculate(in)
	require.Error(t, err)
	assert.Nil(t, result, "ceiling violation must not produce a result")
	assert.ErrorIs(t, err, apperrors.ErrPriceExceedsMaximum)
}

func TestCalculate_MaximumPriceAtComputedPricePasses(t *testing.T) {
	in := baseInput()
	in.MaximumPrice = dp("160")

	result, err := pricing.Calculate(in)
	require.NoError(t, err)
	assert.True(t, result.SalePrice.Equal(d("160")))
}

func TestCalculate_DefaultsApplied(t *testing.T) {
	in := pricing.Input{
		BaseCost:     d("100"),
		BaseCurrency: pricing.CurrencyKRW,
		MarginRate:   d("0.2"),
	}

	// target currency defaults to KRW (same-currency, no rate needed),
	// commission and shipping default to 0, rounding unit to 10
	result, err := pricing.Calculate(in)
	require.NoError(t, err)

	assert.True(t, result.CommissionAmount.IsZero())
	assert.True(t, result.ShippingCost.IsZero())
	assert.True(t, result.RoundingUnit.Equal(d("10")))
	assert.True(t, result.SalePrice.Equal(d("120")), "salePrice = %s", result.SalePrice)
}

func TestCalculate_InvalidInputFails(t *testing.T) {
	in := baseInput()
	in.BaseCost = d("-1")

	result, err := pricing.Calculate(in)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
