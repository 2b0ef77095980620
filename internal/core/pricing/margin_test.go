package pricing_test

import (
	"testing"

	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/opsdrop/dropship_backend/internal/core/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealizedMarginRate(t *testing.T) {
	// cost 100, sold at 160 with 10% commission and 10 shipping:
	// (160 - 16 - 10 - 100) / 100 = 0.34
	rate, err := pricing.RealizedMarginRate(d("100"), d("160"), d("10"), d("0.1"))
	require.NoError(t, err)
	assert.True(t, rate.Equal(d("0.34")), "marginRate = %s", rate)
}

func TestRealizedMarginRate_NoCommissionNoShipping(t *testing.T) {
	rate, err := pricing.RealizedMarginRate(d("100"), d("130"), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, rate.Equal(d("0.3")), "marginRate = %s", rate)
}

func TestRealizedMarginRate_NegativeMarginPossible(t *testing.T) {
	// selling below cost yields a negative realized margin, not an error
	rate, err := pricing.RealizedMarginRate(d("100"), d("90"), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, rate.Equal(d("-0.1")), "marginRate = %s", rate)
}

func TestRealizedMarginRate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		cost      string
		salePrice string
		wantErr   error
	}{
		{name: "zero sale price", cost: "100", salePrice: "0", wantErr: apperrors.ErrNonPositiveSalePrice},
		{name: "negative sale price", cost: "100", salePrice: "-5", wantErr: apperrors.ErrNonPositiveSalePrice},
		{name: "zero cost", cost: "0", salePrice: "100", wantErr: apperrors.ErrNonPositiveCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.RealizedMarginRate(d(tt.cost), d(tt.salePrice), decimal.Zero, decimal.Zero)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSuggestedMarginRate(t *testing.T) {
	// target profit 50 on cost 100 with 10 shipping and 10% commission:
	// requiredRevenue = 160/0.9 ~= 177.78, marginRate ~= 0.7778
	rate, err := pricing.SuggestedMarginRate(d("50"), d("100"), d("10"), d("0.1"))
	require.NoError(t, err)
	assert.True(t, rate.Round(4).Equal(d("0.7778")), "marginRate = %s", rate)
}

func TestSuggestedMarginRate_ZeroCommission(t *testing.T) {
	// no commission: margin must cover shipping plus the profit target exactly
	rate, err := pricing.SuggestedMarginRate(d("30"), d("100"), d("20"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, rate.Equal(d("0.5")), "marginRate = %s", rate)
}

func TestSuggestedMarginRate_RoundTripsThroughRealized(t *testing.T) {
	cost := d("100")
	shipping := d("10")
	commission := d("0.1")
	targetProfit := d("50")

	marginRate, err := pricing.SuggestedMarginRate(targetProfit, cost, shipping, commission)
	require.NoError(t, err)

	// selling at exactly the gross price implied by the suggested margin must
	// realize that same margin rate
	subtotal := cost.Add(cost.Mul(marginRate)).Add(shipping)
	grossPrice := subtotal.Div(d("1").Sub(commission))
	realized, err := pricing.RealizedMarginRate(cost, grossPrice, shipping, commission)
	require.NoError(t, err)

	assert.True(t, realized.Sub(marginRate).Abs().LessThan(d("0.0000001")), "realized %s vs suggested %s", realized, marginRate)
}

func TestSuggestedMarginRate_Errors(t *testing.T) {
	_, err := pricing.SuggestedMarginRate(d("50"), d("0"), decimal.Zero, decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNonPositiveCost)

	_, err = pricing.SuggestedMarginRate(d("50"), d("-10"), decimal.Zero, decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNonPositiveCost)

	_, err = pricing.SuggestedMarginRate(d("50"), d("100"), decimal.Zero, d("1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
