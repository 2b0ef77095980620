package services

import (
	"context"

	"github.com/opsdrop/dropship_backend/internal/core/domain"
	"github.com/opsdrop/dropship_backend/internal/dto"
)

// OrderReaderSvc defines read operations for orders.
type OrderReaderSvc interface {
	// GetOrder retrieves an order by ID.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves the orders created by a user.
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
}

// OrderWriterSvc defines write operations for orders.
type OrderWriterSvc interface {
	// CreateOrder opens an order against a registered product.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error)

	// UpdateStatus moves an order forward through fulfillment.
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) (*domain.Order, error)

	// SettleOrder computes and records the realized margin for an order and
	// marks it settled.
	SettleOrder(ctx context.Context, orderID string, req dto.SettleOrderRequest, updaterUserID string) (*domain.Order, error)
}

// OrderSvcFacade combines all order-related service interfaces.
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
