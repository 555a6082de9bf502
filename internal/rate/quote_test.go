package rate

import (
	"testing"

	"ratesmanager/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestParseQuoteValue_RoundTrips(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "1.20", want: "1.2"},
		{name: "surrounding whitespace", raw: "  1.20 ", want: "1.2"},
		{name: "integer", raw: "150", want: "150"},
		{name: "high precision", raw: "0.00000001", want: "0.00000001"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseQuoteValue(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestParseQuoteValue_Idempotent(t *testing.T) {
	first, err := parseQuoteValue("1.20")
	require.NoError(t, err)
	second, err := parseQuoteValue(first.String())
	require.NoError(t, err)
	require.True(t, first.Equal(second))
}

func TestParseQuoteValue_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "non-numeric", raw: "abc"},
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "grouping characters", raw: "1,234.56"},
		{name: "comma separator", raw: "1,20"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseQuoteValue(tc.raw)
			require.Error(t, err)
			var parseErr *domain.QuoteParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tc.raw, parseErr.Raw)
		})
	}
}

func TestRateFromQuote_Success(t *testing.T) {
	pair := domain.CurrencyPair{From: "USD", To: "EUR"}

	got, err := rateFromQuote(pair, &domain.ExternalQuote{Bid: " 1.18", Ask: "1.22 ", Rate: "1.20"})

	require.NoError(t, err)
	require.Equal(t, "USD", got.FromCurrency)
	require.Equal(t, "EUR", got.ToCurrency)
	require.Equal(t, "1.18", got.Bid.String())
	require.Equal(t, "1.22", got.Ask.String())
}

func TestRateFromQuote_InvariantViolationsRejected(t *testing.T) {
	pair := domain.CurrencyPair{From: "USD", To: "EUR"}
	cases := []struct {
		name  string
		quote *domain.ExternalQuote
	}{
		{name: "ask equals bid", quote: &domain.ExternalQuote{Bid: "1.20", Ask: "1.20"}},
		{name: "ask below bid", quote: &domain.ExternalQuote{Bid: "1.25", Ask: "1.20"}},
		{name: "zero bid", quote: &domain.ExternalQuote{Bid: "0", Ask: "1.20"}},
		{name: "negative bid", quote: &domain.ExternalQuote{Bid: "-1.30", Ask: "1.20"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rateFromQuote(pair, tc.quote)
			var parseErr *domain.QuoteParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}
