package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/opsdrop/dropship_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     NewPgxCurrencyRepository(pool),
		ExchangeRateRepo: NewPgxExchangeRateRepository(pool),
		ProductRepo:      NewPgxProductRepository(pool),
		OrderRepo:        NewPgxOrderRepository(pool),
		UserRepo:         NewPgxUserRepository(pool),
	}
}
