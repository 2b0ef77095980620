package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opsdrop/dropship_backend/internal/apperrors"
	"github.com/opsdrop/dropship_backend/internal/core/domain"
	"github.com/opsdrop/dropship_backend/internal/core/services"
	"github.com/opsdrop/dropship_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          *services.ExchangeRateService
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	currencyService := services.NewCurrencyService(suite.mockCurrencyRepo)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, currencyService)
}

func (suite *ExchangeRateServiceTestSuite) validRequest() dto.CreateExchangeRateRequest {
	return dto.CreateExchangeRateRequest{
		FromCurrencyCode: "CNY",
		ToCurrencyCode:   "KRW",
		Rate:             decimal.RequireFromString("190.5"),
		DateEffective:    time.Now(),
	}
}

// --- Test Cases ---

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := suite.validRequest()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "CNY").Return(&domain.Currency{CurrencyCode: "CNY"}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "KRW").Return(&domain.Currency{CurrencyCode: "KRW"}, nil).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.FromCurrencyCode == "CNY" && r.ToCurrencyCode == "KRW" && r.Rate.Equal(req.Rate) && r.CreatedBy == creatorUserID
	})).Return(nil).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.NotEmpty(rate.ExchangeRateID)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_NonPositiveRate() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Rate = decimal.Zero

	rate, err := suite.service.CreateExchangeRate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_SameCurrencyPair() {
	ctx := context.Background()
	req := suite.validRequest()
	req.ToCurrencyCode = req.FromCurrencyCode

	rate, err := suite.service.CreateExchangeRate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_UnknownFromCurrency() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "CNY").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Success() {
	ctx := context.Background()
	expected := &domain.ExchangeRate{
		FromCurrencyCode: "CNY",
		ToCurrencyCode:   "KRW",
		Rate:             decimal.RequireFromString("190.5"),
	}

	suite.mockRateRepo.On("FindLatestExchangeRate", ctx, "CNY", "KRW").Return(expected, nil).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "cny", "krw")

	suite.Require().NoError(err)
	suite.Equal(expected, rate)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_BadCode() {
	ctx := context.Background()

	rate, err := suite.service.GetExchangeRate(ctx, "CN", "KRW")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindLatestExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_NotFound() {
	ctx := context.Background()

	suite.mockRateRepo.On("FindLatestExchangeRate", ctx, "USD", "JPY").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "USD", "JPY")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
