package rate

import (
	"errors"
	"ratesmanager/internal/domain"
	"strings"

	"github.com/shopspring/decimal"
)

// parseQuoteValue parses one raw provider value into an exact decimal.
// Surrounding whitespace is tolerated; the number itself must use a period
// separator and no grouping characters.
func parseQuoteValue(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, &domain.QuoteParseError{Raw: raw, Err: errors.New("empty value")}
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, &domain.QuoteParseError{Raw: raw, Err: err}
	}
	return d, nil
}

// rateFromQuote converts raw provider text into a new ExchangeRate, enforcing
// ask > bid > 0. A parsed quote violating the invariant is upstream data
// corruption and is rejected the same way as unparseable text.
func rateFromQuote(pair domain.CurrencyPair, quote *domain.ExternalQuote) (*domain.ExchangeRate, error) {
	bid, err := parseQuoteValue(quote.Bid)
	if err != nil {
		return nil, err
	}
	ask, err := parseQuoteValue(quote.Ask)
	if err != nil {
		return nil, err
	}
	if !bid.IsPositive() {
		return nil, &domain.QuoteParseError{Raw: quote.Bid, Err: errors.New("bid must be greater than zero")}
	}
	if ask.Cmp(bid) <= 0 {
		return nil, &domain.QuoteParseError{Raw: quote.Ask, Err: errors.New("ask must be greater than bid")}
	}

	return &domain.ExchangeRate{
		FromCurrency: pair.From,
		ToCurrency:   pair.To,
		Bid:          bid,
		Ask:          ask,
	}, nil
}
