package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuoteClient_Success(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"function":      r.URL.Query().Get("function"),
			"from_currency": r.URL.Query().Get("from_currency"),
			"to_currency":   r.URL.Query().Get("to_currency"),
			"apikey":        r.URL.Query().Get("apikey"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "Realtime Currency Exchange Rate": {
                "5. Exchange Rate": "1.2000",
                "8. Bid Price": "1.1800",
                "9. Ask Price": "1.2200"
            }
        }`))
	}))
	t.Cleanup(srv.Close)

	c := NewQuoteClient(srv.Client(), srv.URL, "demo-key")

	quote, err := c.FetchQuote(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	require.NotNil(t, quote)
	require.Equal(t, "1.1800", quote.Bid)
	require.Equal(t, "1.2200", quote.Ask)
	require.Equal(t, "1.2000", quote.Rate)
	require.Equal(t, map[string]string{
		"function":      "CURRENCY_EXCHANGE_RATE",
		"from_currency": "USD",
		"to_currency":   "EUR",
		"apikey":        "demo-key",
	}, gotQuery)
}

func TestQuoteClient_EmptyPayloadMeansAbsentQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewQuoteClient(srv.Client(), srv.URL, "demo-key")

	quote, err := c.FetchQuote(context.Background(), "GBP", "JPY")
	require.NoError(t, err)
	require.Nil(t, quote)
}

func TestQuoteClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewQuoteClient(srv.Client(), srv.URL, "demo-key")

	_, err := c.FetchQuote(context.Background(), "USD", "EUR")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 503")
	require.Contains(t, err.Error(), "USD")
}

func TestQuoteClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewQuoteClient(srv.Client(), srv.URL, "demo-key")

	_, err := c.FetchQuote(context.Background(), "USD", "EUR")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode response for pair \"USD\"/\"EUR\"")
}

func TestQuoteClient_BaseURLParseError(t *testing.T) {
	c := NewQuoteClient(&http.Client{}, "http://::1]", "demo-key")
	_, err := c.FetchQuote(context.Background(), "USD", "EUR")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse base URL")
}
