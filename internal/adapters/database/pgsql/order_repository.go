package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/opsdrop/dropship_backend/internal/core/domain"
	portsrepo "github.com/opsdrop/dropship_backend/internal/core/ports/repositories"
)

// PgxOrderRepository implements OrderRepository using pgxpool.
type PgxOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPgxOrderRepository creates a new repository for order data.
func NewPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepository {
	return &PgxOrderRepository{pool: pool}
}

const orderColumns = `
	order_id, product_id, quantity, status,
	sale_price, cost, shipping_cost, commission_rate,
	realized_margin_rate, realized_margin_amount,
	created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.CollectableRow) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.OrderID, &o.ProductID, &o.Quantity, &o.Status,
		&o.SalePrice, &o.Cost, &o.ShippingCost, &o.CommissionRate,
		&o.RealizedMarginRate, &o.RealizedMarginAmount,
		&o.CreatedAt, &o.CreatedBy, &o.LastUpdatedAt, &o.LastUpdatedBy,
	)
	return o, err
}

// SaveOrder inserts a new order.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	query := `
		INSERT INTO orders (
			order_id, product_id, quantity, status,
			sale_price, cost, shipping_cost, commission_rate,
			realized_margin_rate, realized_margin_amount,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.pool.Exec(ctx, query,
		order.OrderID, order.ProductID, order.Quantity, order.Status,
		order.SalePrice, order.Cost, order.ShippingCost, order.CommissionRate,
		order.RealizedMarginRate, order.RealizedMarginAmount,
		order.CreatedAt, order.CreatedBy, order.LastUpdatedAt, order.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting order: %w", err)
	}
	return nil
}

// FindOrderByID retrieves an order by its ID.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("error querying order %s: %w", orderID, err)
	}

	order, err := pgx.CollectOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding order %s: %w", orderID, err)
	}
	return &order, nil
}

// ListOrders retrieves orders created by the given user, newest first.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, creatorUserID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE created_by = $1 ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("error querying orders: %w", err)
	}
	defer rows.Close()

	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, fmt.Errorf("error scanning orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus updates the fulfillment status of an order.
func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) error {
	query := `
		UPDATE orders SET
			status = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE order_id = $1
	`
	tag, err := r.pool.Exec(ctx, query, orderID, status, time.Now(), updaterUserID)
	if err != nil {
		return fmt.Errorf("error updating order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateOrderSettlement stores the settlement outcome and marks the order settled.
func (r *PgxOrderRepository) UpdateOrderSettlement(ctx context.Context, order domain.Order) error {
	query := `
		UPDATE orders SET
			status = $2,
			sale_price = $3,
			shipping_cost = $4,
			realized_margin_rate = $5,
			realized_margin_amount = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE order_id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		order.OrderID, order.Status, order.SalePrice, order.ShippingCost,
		order.RealizedMarginRate, order.RealizedMarginAmount,
		order.LastUpdatedAt, order.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating order settlement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
