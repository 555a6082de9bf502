package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRateNotFound is returned when a stored exchange rate is absent.
	ErrRateNotFound = errors.New("exchange rate not found")

	// ErrSourceUnavailable wraps transport or provider faults of the external
	// quote source. Transient: the caller may retry the whole lookup.
	ErrSourceUnavailable = errors.New("quote source unavailable")
)

// QuoteNotFoundError means the quote source answered but had no quote payload
// for the requested pair.
type QuoteNotFoundError struct {
	Pair CurrencyPair
}

func (e *QuoteNotFoundError) Error() string {
	return fmt.Sprintf("no quote available for pair %s", e.Pair)
}

// QuoteParseError means the quote source returned numeric data we could not
// accept. It keeps the offending raw value so the fault stays attributable to
// the exact upstream string. Terminal for the request, never retried.
type QuoteParseError struct {
	Raw string
	Err error
}

func (e *QuoteParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unparseable quote value %q", e.Raw)
	}
	return fmt.Sprintf("unparseable quote value %q: %v", e.Raw, e.Err)
}

func (e *QuoteParseError) Unwrap() error { return e.Err }
