package domain

import "github.com/shopspring/decimal"

// Product is a sourced product registered by an operator, together with the
// pricing settings used to compute its sale price and a snapshot of the last
// computed breakdown.
type Product struct {
	ProductID      string `json:"productID"` // Primary Key (UUID)
	Name           string `json:"name"`
	SourceURL      string `json:"sourceURL"` // marketplace listing the product was sourced from
	BaseCurrency   string `json:"baseCurrency"`
	TargetCurrency string `json:"targetCurrency"`

	BaseCost       decimal.Decimal  `json:"baseCost"`
	MarginRate     decimal.Decimal  `json:"marginRate"`
	CommissionRate decimal.Decimal  `json:"commissionRate"`
	ShippingCost   decimal.Decimal  `json:"shippingCost"`
	RoundingUnit   decimal.Decimal  `json:"roundingUnit"`
	MinimumPrice   *decimal.Decimal `json:"minimumPrice,omitempty"`
	MaximumPrice   *decimal.Decimal `json:"maximumPrice,omitempty"`

	// Snapshot of the last sale-price calculation for this product.
	SalePrice        decimal.Decimal `json:"salePrice"`
	ConvertedCost    decimal.Decimal `json:"convertedCost"`
	MarginAmount     decimal.Decimal `json:"marginAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	Subtotal         decimal.Decimal `json:"subtotal"`

	AuditFields
}
