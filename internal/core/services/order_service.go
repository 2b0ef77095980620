package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/opsdrop/dropship_backend/internal/core/domain"
	portsrepo "github.com/opsdrop/dropship_backend/internal/core/ports/repositories"
	portssvc "github.com/opsdrop/dropship_backend/internal/core/ports/services"
	"github.com/opsdrop/dropship_backend/internal/dto"
)

// OrderService provides business logic for tracking orders through
// fulfillment and settling their realized margin.
type OrderService struct {
	orderRepo   portsrepo.OrderRepository
	productRepo portsrepo.ProductRepository
	pricingSvc  portssvc.PricingSvcFacade
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepository, productRepo portsrepo.ProductRepository, pricingSvc portssvc.PricingSvcFacade) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		pricingSvc:  pricingSvc,
	}
}

// CreateOrder opens an order against a registered product. Monetary fields
// are snapshotted per unit from the product so later recalculations of the
// product cannot change what this order settles against.
func (s *OrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error) {
	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product for order: %w", err)
	}

	salePrice := product.SalePrice
	if req.SalePrice != nil {
		salePrice = *req.SalePrice
	}
	shippingCost := product.ShippingCost
	if req.ShippingCost != nil {
		shippingCost = *req.ShippingCost
	}

	now := time.Now()
	order := domain.Order{
		OrderID:        uuid.NewString(),
		ProductID:      product.ProductID,
		Quantity:       req.Quantity,
		Status:         domain.OrderPending,
		SalePrice:      salePrice,
		Cost:           product.ConvertedCost,
		ShippingCost:   shippingCost,
		CommissionRate: product.CommissionRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in service: %w", err)
	}

	return &order, nil
}

// GetOrder retrieves an order by ID.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order in service: %w", err)
	}
	return order, nil
}

// ListOrders retrieves the orders created by a user.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders in service: %w", err)
	}
	if orders == nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

// UpdateStatus moves an order forward through fulfillment. Transitions only
// go forward; SETTLED is reachable only through SettleOrder.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) (*domain.Order, error) {
	if !domain.IsValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status '%s'", apperrors.ErrValidation, status)
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order for status update: %w", err)
	}
	if order.CreatedBy != updaterUserID {
		return nil, fmt.Errorf("%w: order %s belongs to another operator", apperrors.ErrForbidden, orderID)
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot transition order from %s to %s", apperrors.ErrValidation, order.Status, status)
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status, updaterUserID); err != nil {
		return nil, fmt.Errorf("failed to update order status in service: %w", err)
	}

	order.Status = status
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = updaterUserID
	return order, nil
}

// SettleOrder computes the realized margin for an order from its actual sale
// price and records the outcome. This is the post-sale verification step: the
// achieved margin rate can differ from the one the product was priced with.
func (s *OrderService) SettleOrder(ctx context.Context, orderID string, req dto.SettleOrderRequest, updaterUserID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order for settlement: %w", err)
	}
	if order.CreatedBy != updaterUserID {
		return nil, fmt.Errorf("%w: order %s belongs to another operator", apperrors.ErrForbidden, orderID)
	}
	if order.Status == domain.OrderSettled {
		return nil, fmt.Errorf("%w: order %s is already settled", apperrors.ErrValidation, orderID)
	}

	salePrice := order.SalePrice
	if req.ActualSalePrice != nil {
		salePrice = *req.ActualSalePrice
	}
	shippingCost := order.ShippingCost
	if req.ActualShippingCost != nil {
		shippingCost = *req.ActualShippingCost
	}

	marginRate, err := s.pricingSvc.RealizedMargin(ctx, dto.RealizedMarginRequest{
		Cost:           order.Cost,
		SalePrice:      salePrice,
		ShippingCost:   shippingCost,
		CommissionRate: order.CommissionRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute realized margin: %w", err)
	}
	marginAmount := marginRate.Mul(order.Cost)

	order.Status = domain.OrderSettled
	order.SalePrice = salePrice
	order.ShippingCost = shippingCost
	order.RealizedMarginRate = &marginRate
	order.RealizedMarginAmount = &marginAmount
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = updaterUserID

	if err := s.orderRepo.UpdateOrderSettlement(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to persist order settlement in service: %w", err)
	}

	return order, nil
}
