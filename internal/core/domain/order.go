package domain

import "github.com/shopspring/decimal"

// OrderStatus tracks an order through fulfillment.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderOrdered   OrderStatus = "ORDERED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderSettled   OrderStatus = "SETTLED"
)

// orderStatusRank defines the forward-only progression of an order.
var orderStatusRank = map[OrderStatus]int{
	OrderPending:   0,
	OrderOrdered:   1,
	OrderShipped:   2,
	OrderDelivered: 3,
	OrderSettled:   4,
}

// IsValidOrderStatus reports whether s is a known order status.
func IsValidOrderStatus(s OrderStatus) bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanTransitionTo reports whether an order may move from its current status to
// next. Transitions only go forward; SETTLED is reached via settlement, not a
// plain status update.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, okFrom := orderStatusRank[s]
	to, okTo := orderStatusRank[next]
	if !okFrom || !okTo {
		return false
	}
	return to > from && next != OrderSettled
}

// Order is a sale of a registered product being tracked through fulfillment.
// Cost and price fields are snapshotted at creation time; settlement computes
// the realized margin from the actual sale price.
type Order struct {
	OrderID   string      `json:"orderID"` // Primary Key (UUID)
	ProductID string      `json:"productID"`
	Quantity  int64       `json:"quantity"`
	Status    OrderStatus `json:"status"`

	// All monetary fields are in the product's target currency.
	SalePrice      decimal.Decimal `json:"salePrice"`
	Cost           decimal.Decimal `json:"cost"`
	ShippingCost   decimal.Decimal `json:"shippingCost"`
	CommissionRate decimal.Decimal `json:"commissionRate"`

	// Settlement outcome; set when the order reaches SETTLED.
	RealizedMarginRate   *decimal.Decimal `json:"realizedMarginRate,omitempty"`
	RealizedMarginAmount *decimal.Decimal `json:"realizedMarginAmount,omitempty"`

	AuditFields
}
