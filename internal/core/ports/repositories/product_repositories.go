package repositories

import (
	"context"

	"github.com/opsdrop/dropship_backend/internal/core/domain"
)

// ProductRepository defines persistence operations for registered products.
type ProductRepository interface {
	// SaveProduct inserts a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// FindProductByID retrieves a product. Returns apperrors.ErrNotFound when absent.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products registered by the given user, newest first.
	ListProducts(ctx context.Context, creatorUserID string) ([]domain.Product, error)

	// UpdateProductPricing stores a recomputed price snapshot on an existing product.
	UpdateProductPricing(ctx context.Context, product domain.Product) error
}
