package services

import (
	"context"

	"github.com/opsdrop/dropship_backend/internal/core/domain"
	"github.com/opsdrop/dropship_backend/internal/dto"
)

// ProductReaderSvc defines read operations for registered products.
type ProductReaderSvc interface {
	// GetProduct retrieves a product by ID.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves the products registered by a user.
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for registered products.
type ProductWriterSvc interface {
	// CreateProduct registers a sourced product, computing its sale price.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// RecalculatePrice re-runs the price calculation for a product against the
	// currently stored exchange rates and updates the snapshot.
	RecalculatePrice(ctx context.Context, productID string, updaterUserID string) (*domain.Product, error)
}

// ProductSvcFacade combines all product-related service interfaces.
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
