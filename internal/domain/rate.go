package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRate is the persisted rate for an ordered currency pair.
// ID and the pair are immutable after creation; only Bid and Ask may change.
type ExchangeRate struct {
	ID           uuid.UUID
	FromCurrency string
	ToCurrency   string
	Bid          decimal.Decimal
	Ask          decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CurrencyPair is an ordered (from, to) tuple of 3-letter uppercase codes.
type CurrencyPair struct {
	From string
	To   string
}

func (p CurrencyPair) String() string {
	return p.From + "/" + p.To
}

// ExternalQuote carries the raw textual fields returned by the quote provider.
// Values are not parsed yet and are not guaranteed to be well-formed numbers.
type ExternalQuote struct {
	Bid  string
	Ask  string
	Rate string
}
