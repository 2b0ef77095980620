package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/opsdrop/dropship_backend/internal/core/domain"
	portssvc "github.com/opsdrop/dropship_backend/internal/core/ports/services"
	"github.com/opsdrop/dropship_backend/internal/core/services"
	"github.com/opsdrop/dropship_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, creatorUserID string) ([]domain.Order, error) {
	args := m.Called(ctx, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) error {
	args := m.Called(ctx, orderID, status, updaterUserID)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrderSettlement(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, creatorUserID string) ([]domain.Product, error) {
	args := m.Called(ctx, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProductPricing(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo   *MockOrderRepository
	mockProductRepo *MockProductRepository
	service         portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockProductRepo = new(MockProductRepository)
	// The margin calculations behind settlement never touch the rate
	// repository, so a nil-backed pricing service is fine here.
	pricingSvc := services.NewPricingService(nil)
	suite.service = services.NewOrderService(suite.mockOrderRepo, suite.mockProductRepo, pricingSvc)
}

func (suite *OrderServiceTestSuite) sampleProduct() *domain.Product {
	return &domain.Product{
		ProductID:      uuid.NewString(),
		Name:           "USB-C Hub",
		TargetCurrency: "KRW",
		CommissionRate: decimal.RequireFromString("0.1"),
		ShippingCost:   decimal.RequireFromString("10"),
		SalePrice:      decimal.RequireFromString("160"),
		ConvertedCost:  decimal.RequireFromString("100"),
	}
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestCreateOrder_SnapshotsProductPricing() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	product := suite.sampleProduct()

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.ProductID == product.ProductID &&
			o.Status == domain.OrderPending &&
			o.SalePrice.Equal(product.SalePrice) &&
			o.Cost.Equal(product.ConvertedCost) &&
			o.ShippingCost.Equal(product.ShippingCost) &&
			o.CommissionRate.Equal(product.CommissionRate) &&
			o.CreatedBy == creatorUserID
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, dto.CreateOrderRequest{
		ProductID: product.ProductID,
		Quantity:  3,
	}, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(int64(3), order.Quantity)
	suite.Equal(domain.OrderPending, order.Status)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_PriceOverride() {
	ctx := context.Background()
	product := suite.sampleProduct()
	override := decimal.RequireFromString("150")

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.SalePrice.Equal(override)
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, dto.CreateOrderRequest{
		ProductID: product.ProductID,
		Quantity:  1,
		SalePrice: &override,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(order.SalePrice.Equal(override))
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_ProductNotFound() {
	ctx := context.Background()
	productID := uuid.NewString()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	order, err := suite.service.CreateOrder(ctx, dto.CreateOrderRequest{
		ProductID: productID,
		Quantity:  1,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateStatus_Forward() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := &domain.Order{
		OrderID:     uuid.NewString(),
		Status:      domain.OrderPending,
		AuditFields: domain.AuditFields{CreatedBy: updaterUserID},
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, existing.OrderID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, existing.OrderID, domain.OrderShipped, updaterUserID).Return(nil).Once()

	order, err := suite.service.UpdateStatus(ctx, existing.OrderID, domain.OrderShipped, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderShipped, order.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateStatus_BackwardRejected() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := &domain.Order{
		OrderID:     uuid.NewString(),
		Status:      domain.OrderShipped,
		AuditFields: domain.AuditFields{CreatedBy: updaterUserID},
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, existing.OrderID).Return(existing, nil).Once()

	order, err := suite.service.UpdateStatus(ctx, existing.OrderID, domain.OrderOrdered, updaterUserID)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateStatus_SettledRejected() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := &domain.Order{
		OrderID:     uuid.NewString(),
		Status:      domain.OrderDelivered,
		AuditFields: domain.AuditFields{CreatedBy: updaterUserID},
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, existing.OrderID).Return(existing, nil).Once()

	order, err := suite.service.UpdateStatus(ctx, existing.OrderID, domain.OrderSettled, updaterUserID)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestUpdateStatus_OtherOperatorsOrder() {
	ctx := context.Background()
	existing := &domain.Order{
		OrderID:     uuid.NewString(),
		Status:      domain.OrderPending,
		AuditFields: domain.AuditFields{CreatedBy: uuid.NewString()},
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, existing.OrderID).Return(existing, nil).Once()

	order, err := suite.service.UpdateStatus(ctx, existing.OrderID, domain.OrderOrdered, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateStatus_UnknownStatus() {
	ctx := context.Background()

	order, err := suite.service.UpdateStatus(ctx, uuid.NewString(), domain.OrderStatus("LOST"), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "FindOrderByID", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestSettleOrder_ComputesRealizedMargin() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := &domain.Order{
		OrderID:        uuid.NewString(),
		Status:         domain.OrderDelivered,
		SalePrice:      decimal.RequireFromString("160"),
		Cost:           decimal.RequireFromString("100"),
		ShippingCost:   decimal.RequireFromString("10"),
		CommissionRate: decimal.RequireFromString("0.1"),
		AuditFields:    domain.AuditFields{CreatedBy: updaterUserID},
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, existing.OrderID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderSettlement", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderSettled && o.RealizedMarginRate != nil && o.RealizedMarginAmount != nil
	})).Return(nil).Once()

	order, err := suite.service.SettleOrder(ctx, existing.OrderID, dto.SettleOrderRequest{}, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderSettled, order.Status)
	// (160 - 16 - 10 - 100) / 100
	suite.True(order.RealizedMarginRate.Equal(decimal.RequireFromString("0.34")), "rate = %s", order.RealizedMarginRate)
	suite.True(order.RealizedMarginAmount.Equal(decimal.RequireFromString("34")), "amount = %s", order.RealizedMarginAmount)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestSettleOrder_ActualPriceOverride() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := &domain.Order{
		OrderID:        uuid.NewString(),
		Status:         domain.OrderDelivered,
		SalePrice:      decimal.RequireFromString("160"),
		Cost:           decimal.RequireFromString("100"),
		ShippingCost:   decimal.RequireFromString("10"),
		CommissionRate: decimal.RequireFromString("0.1"),
		AuditFields:    domain.AuditFields{CreatedBy: updaterUserID},
	}
	actualPrice := decimal.RequireFromString("150")

	suite.mockOrderRepo.On("FindOrderByID", ctx, existing.OrderID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderSettlement", ctx, mock.AnythingOfType("domain.Order")).Return(nil).Once()

	order, err := suite.service.SettleOrder(ctx, existing.OrderID, dto.SettleOrderRequest{
		ActualSalePrice: &actualPrice,
	}, updaterUserID)

	suite.Require().NoError(err)
	suite.True(order.SalePrice.Equal(actualPrice))
	// (150 - 15 - 10 - 100) / 100
	suite.True(order.RealizedMarginRate.Equal(decimal.RequireFromString("0.25")), "rate = %s", order.RealizedMarginRate)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestSettleOrder_AlreadySettled() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := &domain.Order{
		OrderID:     uuid.NewString(),
		Status:      domain.OrderSettled,
		AuditFields: domain.AuditFields{CreatedBy: updaterUserID},
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, existing.OrderID).Return(existing, nil).Once()

	order, err := suite.service.SettleOrder(ctx, existing.OrderID, dto.SettleOrderRequest{}, updaterUserID)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderSettlement", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestSettleOrder_OtherOperatorsOrder() {
	ctx := context.Background()
	existing := &domain.Order{
		OrderID:     uuid.NewString(),
		Status:      domain.OrderDelivered,
		AuditFields: domain.AuditFields{CreatedBy: uuid.NewString()},
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, existing.OrderID).Return(existing, nil).Once()

	order, err := suite.service.SettleOrder(ctx, existing.OrderID, dto.SettleOrderRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderSettlement", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestListOrders_NilBecomesEmpty() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockOrderRepo.On("ListOrders", ctx, userID).Return(nil, nil).Once()

	orders, err := suite.service.ListOrders(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *OrderServiceTestSuite) TestGetOrder_RepoError() {
	ctx := context.Background()
	orderID := uuid.NewString()
	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(nil, assert.AnError).Once()

	order, err := suite.service.GetOrder(ctx, orderID)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, assert.AnError)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
