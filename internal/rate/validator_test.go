package rate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestValidator_ValidatePair_Valid(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.ValidatePair("USD", "EUR"))
}

func TestValidator_ValidatePair_Invalid(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name      string
		from, to  string
		wantField string
	}{
		{name: "empty from", from: "", to: "EUR", wantField: "fromCurrency"},
		{name: "empty to", from: "USD", to: "", wantField: "toCurrency"},
		{name: "lowercase", from: "usd", to: "EUR", wantField: "fromCurrency"},
		{name: "too long", from: "USDX", to: "EUR", wantField: "fromCurrency"},
		{name: "digits", from: "US1", to: "EUR", wantField: "fromCurrency"},
		{name: "equal codes", from: "USD", to: "USD", wantField: "toCurrency"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidatePair(tc.from, tc.to)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			require.Contains(t, fields, tc.wantField)
		})
	}
}

func TestValidator_ValidateRate_CollectsAllFieldErrors(t *testing.T) {
	v := NewValidator()

	err := v.ValidateRate("usd", "usd", dec(t, "-1"), dec(t, "-2"))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.GreaterOrEqual(t, len(verr.Fields), 3)
}

func TestValidator_ValidatePrices(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidatePrices(dec(t, "1.18"), dec(t, "1.22")))

	err := v.ValidatePrices(dec(t, "1.25"), dec(t, "1.20"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	require.Equal(t, "ask", verr.Fields[0].Field)

	err = v.ValidatePrices(dec(t, "0"), dec(t, "1.20"))
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "bid", verr.Fields[0].Field)
}
