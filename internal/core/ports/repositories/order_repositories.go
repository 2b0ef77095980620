package repositories

import (
	"context"

	"github.com/opsdrop/dropship_backend/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// SaveOrder inserts a new order.
	SaveOrder(ctx context.Context, order domain.Order) error

	// FindOrderByID retrieves an order. Returns apperrors.ErrNotFound when absent.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves orders created by the given user, newest first.
	ListOrders(ctx context.Context, creatorUserID string) ([]domain.Order, error)

	// UpdateOrderStatus updates the fulfillment status of an order.
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) error

	// UpdateOrderSettlement stores the settlement outcome and marks the order settled.
	UpdateOrderSettlement(ctx context.Context, order domain.Order) error
}
