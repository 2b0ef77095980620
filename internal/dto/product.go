package dto

import (
	"time"

	"github.com/opsdrop/dropship_backend/internal/core/domain"
	"github.com/opsdrop/dropship_backend/internal/core/pricing"
	"github.com/shopspring/decimal"
)

// CreateProductRequest registers a sourced product. Currency fields are
// constrained at bind time; the numeric pricing fields are validated by the
// engine so the operator gets the full violation list back.
type CreateProductRequest struct {
	Name           string           `json:"name" binding:"required"`
	SourceURL      string           `json:"sourceURL" binding:"omitempty,url"`
	BaseCost       decimal.Decimal  `json:"baseCost"`
	BaseCurrency   string           `json:"baseCurrency" binding:"required,supportedcurrency"`
	TargetCurrency string           `json:"targetCurrency" binding:"omitempty,supportedcurrency"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty"`
	MarginRate     decimal.Decimal  `json:"marginRate"`
	CommissionRate decimal.Decimal  `json:"commissionRate"`
	ShippingCost   decimal.Decimal  `json:"shippingCost"`
	RoundingUnit   decimal.Decimal  `json:"roundingUnit"`
	MinimumPrice   *decimal.Decimal `json:"minimumPrice,omitempty"`
	MaximumPrice   *decimal.Decimal `json:"maximumPrice,omitempty"`
}

// ToPricingInput converts the registration request into an engine input record.
func (r CreateProductRequest) ToPricingInput() pricing.Input {
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

// ProductResponse is the API representation of a registered product.
type ProductResponse struct {
	ProductID      string           `json:"productID"`
	Name           string           `json:"name"`
	SourceURL      string           `json:"sourceURL,omitempty"`
	BaseCurrency   string           `json:"baseCurrency"`
	TargetCurrency string           `json:"targetCurrency"`
	BaseCost       decimal.Decimal  `json:"baseCost"`
	MarginRate     decimal.Decimal  `json:"marginRate"`
	CommissionRate decimal.Decimal  `json:"commissionRate"`
	ShippingCost   decimal.Decimal  `json:"shippingCost"`
	RoundingUnit   decimal.Decimal  `json:"roundingUnit"`
	MinimumPrice   *decimal.Decimal `json:"minimumPrice,omitempty"`
	MaximumPrice   *decimal.Decimal `json:"maximumPrice,omitempty"`

	SalePrice        decimal.Decimal `json:"salePrice"`
	ConvertedCost    decimal.Decimal `json:"convertedCost"`
	MarginAmount     decimal.Decimal `json:"marginAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	Subtotal         decimal.Decimal `json:"subtotal"`

	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:        p.ProductID,
		Name:             p.Name,
		SourceURL:        p.SourceURL,
		BaseCurrency:     p.BaseCurrency,
		TargetCurrency:   p.TargetCurrency,
		BaseCost:         p.BaseCost,
		MarginRate:       p.MarginRate,
		CommissionRate:   p.CommissionRate,
		ShippingCost:     p.ShippingCost,
		RoundingUnit:     p.RoundingUnit,
		MinimumPrice:     p.MinimumPrice,
		MaximumPrice:     p.MaximumPrice,
		SalePrice:        p.SalePrice,
		ConvertedCost:    p.ConvertedCost,
		MarginAmount:     p.MarginAmount,
		CommissionAmount: p.CommissionAmount,
		Subtotal:         p.Subtotal,
		CreatedAt:        p.CreatedAt,
		CreatedBy:        p.CreatedBy,
		LastUpdatedAt:    p.LastUpdatedAt,
		LastUpdatedBy:    p.LastUpdatedBy,
	}
}

// ToListProductResponse converts a slice of products to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
