package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/opsdrop/dropship_backend/internal/core/domain"
	portsrepo "github.com/opsdrop/dropship_backend/internal/core/ports/repositories"
)

// PgxProductRepository implements ProductRepository using pgxpool.
type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// NewPgxProductRepository creates a new repository for product data.
func NewPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{pool: pool}
}

const productColumns = `
	product_id, name, source_url, base_currency, target_currency,
	base_cost, margin_rate, commission_rate, shipping_cost, rounding_unit,
	minimum_price, maximum_price,
	sale_price, converted_cost, margin_amount, commission_amount, subtotal,
	created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.CollectableRow) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ProductID, &p.Name, &p.SourceURL, &p.BaseCurrency, &p.TargetCurrency,
		&p.BaseCost, &p.MarginRate, &p.CommissionRate, &p.ShippingCost, &p.RoundingUnit,
		&p.MinimumPrice, &p.MaximumPrice,
		&p.SalePrice, &p.ConvertedCost, &p.MarginAmount, &p.CommissionAmount, &p.Subtotal,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	return p, err
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (
			product_id, name, source_url, base_currency, target_currency,
			base_cost, margin_rate, commission_rate, shipping_cost, rounding_unit,
			minimum_price, maximum_price,
			sale_price, converted_cost, margin_amount, commission_amount, subtotal,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)
	`
	_, err := r.pool.Exec(ctx, query,
		product.ProductID, product.Name, product.SourceURL, product.BaseCurrency, product.TargetCurrency,
		product.BaseCost, product.MarginRate, product.CommissionRate, product.ShippingCost, product.RoundingUnit,
		product.MinimumPrice, product.MaximumPrice,
		product.SalePrice, product.ConvertedCost, product.MarginAmount, product.CommissionAmount, product.Subtotal,
		product.CreatedAt, product.CreatedBy, product.LastUpdatedAt, product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting product: %w", err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("error querying product %s: %w", productID, err)
	}

	product, err := pgx.CollectOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding product %s: %w", productID, err)
	}
	return &product, nil
}

// ListProducts retrieves products registered by the given user, newest first.
func (r *PgxProductRepository) ListProducts(ctx context.Context, creatorUserID string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE created_by = $1 ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("error scanning products: %w", err)
	}
	return products, nil
}

// UpdateProductPricing stores a recomputed price snapshot on an existing product.
func (r *PgxProductRepository) UpdateProductPricing(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products SET
			sale_price = $2,
			converted_cost = $3,
			margin_amount = $4,
			commission_amount = $5,
			subtotal = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE product_id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		product.ProductID,
		product.SalePrice, product.ConvertedCost, product.MarginAmount, product.CommissionAmount, product.Subtotal,
		product.LastUpdatedAt, product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating product pricing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
