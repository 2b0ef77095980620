package services

import (
	portsrepo "github.com/opsdrop/dropship_backend/internal/core/ports/repositories"
	portssvc "github.com/opsdrop/dropship_backend/internal/core/ports/services"
	"github.com/opsdrop/dropship_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Pricing first since product and order services depend on it
	container.Pricing = NewPricingService(repos.ExchangeRateRepo)

	currencyService := NewCurrencyService(repos.CurrencyRepo)
	container.Currency = currencyService
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, currencyService)
	container.Product = NewProductService(repos.ProductRepo, container.Pricing)
	container.Order = NewOrderService(repos.OrderRepo, repos.ProductRepo, container.Pricing)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}

// Compile-time interface implementation checks
var (
	_ portssvc.PricingSvcFacade      = (*PricingService)(nil)
	_ portssvc.ProductSvcFacade      = (*ProductService)(nil)
	_ portssvc.OrderSvcFacade        = (*OrderService)(nil)
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.UserSvcFacade         = (*UserService)(nil)
)
