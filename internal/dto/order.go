package dto

import (
	"time"

	"github.com/opsdrop/dropship_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest opens an order against a registered product. Price and
// cost default to the product's snapshot when omitted.
type CreateOrderRequest struct {
	ProductID    string           `json:"productID" binding:"required,uuid"`
	Quantity     int64            `json:"quantity" binding:"required,min=1"`
	SalePrice    *decimal.Decimal `json:"salePrice,omitempty"`
	ShippingCost *decimal.Decimal `json:"shippingCost,omitempty"`
}

// UpdateOrderStatusRequest moves an order forward through fulfillment.
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

// SettleOrderRequest finalizes an order. The actual sale price overrides the
// snapshot when the marketplace settled at a different amount.
type SettleOrderRequest struct {
	ActualSalePrice    *decimal.Decimal `json:"actualSalePrice,omitempty"`
	ActualShippingCost *decimal.Decimal `json:"actualShippingCost,omitempty"`
}

// OrderResponse is the API representation of an order.
type OrderResponse struct {
	OrderID              string             `json:"orderID"`
	ProductID            string             `json:"productID"`
	Quantity             int64              `json:"quantity"`
	Status               domain.OrderStatus `json:"status"`
	SalePrice            decimal.Decimal    `json:"salePrice"`
	Cost                 decimal.Decimal    `json:"cost"`
	ShippingCost         decimal.Decimal    `json:"shippingCost"`
	CommissionRate       decimal.Decimal    `json:"commissionRate"`
	RealizedMarginRate   *decimal.Decimal   `json:"realizedMarginRate,omitempty"`
	RealizedMarginAmount *decimal.Decimal   `json:"realizedMarginAmount,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
	CreatedBy            string             `json:"createdBy"`
	LastUpdatedAt        time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy        string             `json:"lastUpdatedBy"`
}

// ToOrderResponse converts a domain.Order to its response DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:              o.OrderID,
		ProductID:            o.ProductID,
		Quantity:             o.Quantity,
		Status:               o.Status,
		SalePrice:            o.SalePrice,
		Cost:                 o.Cost,
		ShippingCost:         o.ShippingCost,
		CommissionRate:       o.CommissionRate,
		RealizedMarginRate:   o.RealizedMarginRate,
		RealizedMarginAmount: o.RealizedMarginAmount,
		CreatedAt:            o.CreatedAt,
		CreatedBy:            o.CreatedBy,
		LastUpdatedAt:        o.LastUpdatedAt,
		LastUpdatedBy:        o.LastUpdatedBy,
	}
}

// ToListOrderResponse converts a slice of orders to response DTOs.
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i := range orders {
		res[i] = ToOrderResponse(&orders[i])
	}
	return res
}
