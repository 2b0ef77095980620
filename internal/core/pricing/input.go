// Package pricing implements the sale-price calculation engine for sourced
// products: converting a sourcing cost into a final sale price with margin,
// platform commission, shipping, rounding and price bounds, plus the inverse
// margin calculations used at settlement time.
//
// Every function is a pure computation over its inputs; the package holds no
// state and performs no I/O, so it is safe for any number of concurrent callers.
package pricing

import "github.com/shopspring/decimal"

// Supported currency codes. Exchange rates are supplied by the caller as a
// direct base->target multiplicative factor; no rate lookup happens here.
const (
	CurrencyCNY = "CNY"
	CurrencyKRW = "KRW"
	CurrencyUSD = "USD"
	CurrencyJPY = "JPY"
	CurrencyEUR = "EUR"
)

// DefaultTargetCurrency is applied when the input leaves the target currency empty.
const DefaultTargetCurrency = CurrencyKRW

var supportedCurrencies = map[string]struct{}{
	CurrencyCNY: {},
	CurrencyKRW: {},
	CurrencyUSD: {},
	CurrencyJPY: {},
	CurrencyEUR: {},
}

// IsSupportedCurrency reports whether code is one of the fixed currency set.
func IsSupportedCurrency(code string) bool {
	_, ok := supportedCurrencies[code]
	return ok
}

// SupportedCurrencies returns the fixed currency set in stable order.
func SupportedCurrencies() []string {
	return []string{CurrencyCNY, CurrencyKRW, CurrencyUSD, CurrencyJPY, CurrencyEUR}
}

var (
	defaultRoundingUnit = decimal.NewFromInt(10)
	maxCommissionRate   = decimal.RequireFromString("0.3")
	one                 = decimal.NewFromInt(1)
)

// Input is the raw record for a forward price calculation. Optional fields are
// pointers; zero values on CommissionRate and ShippingCost are their defaults.
type Input struct {
	BaseCost       decimal.Decimal
	BaseCurrency   string
	TargetCurrency string
	ExchangeRate   *decimal.Decimal
	MarginRate     decimal.Decimal
	CommissionRate decimal.Decimal
	ShippingCost   decimal.Decimal
	RoundingUnit   decimal.Decimal
	MinimumPrice   *decimal.Decimal
	MaximumPrice   *decimal.Decimal
}

// Result is the breakdown produced by a forward price calculation.
type Result struct {
	SalePrice        decimal.Decimal
	Subtotal         decimal.Decimal
	ConvertedCost    decimal.Decimal
	MarginAmount     decimal.Decimal
	CommissionAmount decimal.Decimal
	ShippingCost     decimal.Decimal
	RoundingUnit     decimal.Decimal
}

// ApplyDefaults fills the declared defaults on a raw input. It is a separate
// step from Validate so the two concerns stay independently testable.
func ApplyDefaults(in Input) Input {
	if in.TargetCurrency == "" {
		in.TargetCurrency = DefaultTargetCurrency
	}
	if in.RoundingUnit.IsZero() {
		in.RoundingUnit = defaultRoundingUnit
	}
	return in
}
