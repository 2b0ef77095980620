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
	"github.com/opsdrop/dropship_backend/internal/core/pricing"
	"github.com/opsdrop/dropship_backend/internal/dto"
)

// ProductService provides business logic for sourced product registration.
type ProductService struct {
	productRepo portsrepo.ProductRepository
	pricingSvc  portssvc.PricingSvcFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepository, pricingSvc portssvc.PricingSvcFacade) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		pricingSvc:  pricingSvc,
	}
}

// CreateProduct registers a sourced product. The sale price is computed up
// front so the operator sees the full breakdown at registration time; pricing
// failures (validation, missing rate, ceiling) abort the registration.
func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	result, err := s.pricingSvc.CalculatePrice(ctx, dto.CalculatePriceRequest{
		BaseCost:       req.BaseCost,
		BaseCurrency:   req.BaseCurrency,
		TargetCurrency: req.TargetCurrency,
		ExchangeRate:   req.ExchangeRate,
		MarginRate:     req.MarginRate,
		CommissionRate: req.CommissionRate,
		ShippingCost:   req.ShippingCost,
		RoundingUnit:   req.RoundingUnit,
		MinimumPrice:   req.MinimumPrice,
		MaximumPrice:   req.MaximumPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to price product at registration: %w", err)
	}

	now := time.Now()
	targetCurrency := req.TargetCurrency
	if targetCurrency == "" {
		targetCurrency = pricing.DefaultTargetCurrency
	}

	product := domain.Product{
		ProductID:        uuid.NewString(),
		Name:             req.Name,
		SourceURL:        req.SourceURL,
		BaseCurrency:     req.BaseCurrency,
		TargetCurrency:   targetCurrency,
		BaseCost:         req.BaseCost,
		MarginRate:       req.MarginRate,
		CommissionRate:   req.CommissionRate,
		ShippingCost:     result.ShippingCost,
		RoundingUnit:     result.RoundingUnit,
		MinimumPrice:     req.MinimumPrice,
		MaximumPrice:     req.MaximumPrice,
		SalePrice:        result.SalePrice,
		ConvertedCost:    result.ConvertedCost,
		MarginAmount:     result.MarginAmount,
		CommissionAmount: result.CommissionAmount,
		Subtotal:         result.Subtotal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in service: %w", err)
	}

	return &product, nil
}

// GetProduct retrieves a product by ID.
func (s *ProductService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product in service: %w", err)
	}
	return product, nil
}

// ListProducts retrieves the products registered by a user.
func (s *ProductService) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products in service: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

// RecalculatePrice re-runs the sale-price calculation for a product against
// the currently stored exchange rates and persists the refreshed snapshot.
// The stored pricing settings are reused as-is; only the resolved rate moves.
func (s *ProductService) RecalculatePrice(ctx context.Context, productID string, updaterUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product for recalculation: %w", err)
	}
	if product.CreatedBy != updaterUserID {
		return nil, fmt.Errorf("%w: product %s belongs to another operator", apperrors.ErrForbidden, productID)
	}

	result, err := s.pricingSvc.CalculatePrice(ctx, dto.CalculatePriceRequest{
		BaseCost:       product.BaseCost,
		BaseCurrency:   product.BaseCurrency,
		TargetCurrency: product.TargetCurrency,
		MarginRate:     product.MarginRate,
		CommissionRate: product.CommissionRate,
		ShippingCost:   product.ShippingCost,
		RoundingUnit:   product.RoundingUnit,
		MinimumPrice:   product.MinimumPrice,
		MaximumPrice:   product.MaximumPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to recalculate product price: %w", err)
	}

	product.SalePrice = result.SalePrice
	product.ConvertedCost = result.ConvertedCost
	product.MarginAmount = result.MarginAmount
	product.CommissionAmount = result.CommissionAmount
	product.Subtotal = result.Subtotal
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProductPricing(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product pricing in service: %w", err)
	}

	return product, nil
}
