package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores an operator-entered conversion rate between two
// currencies. The rate is directional (from -> to); no cross-rate derivation
// is performed anywhere in the system.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`   // Primary Key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"` // FK -> Currency.currencyCode
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // FK -> Currency.currencyCode
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
