package repositories

// RepositoryProvider bundles all repository implementations for injection into
// the service container.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyRepository
	ExchangeRateRepo ExchangeRateRepository
	ProductRepo      ProductRepository
	OrderRepo        OrderRepository
	UserRepo         UserRepository
}
