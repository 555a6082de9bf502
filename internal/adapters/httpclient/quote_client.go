package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"ratesmanager/internal/domain"
)

// QuoteClient fetches realtime currency quotes from an AlphaVantage-style API.
// The provider returns numeric fields as text under versioned field names, so
// the payload is handed back raw and parsed by the caller.
type QuoteClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

type quoteResponse struct {
	ExchangeRateData *quoteData `json:"Realtime Currency Exchange Rate"`
}

type quoteData struct {
	Rate string `json:"5. Exchange Rate"`
	Bid  string `json:"8. Bid Price"`
	Ask  string `json:"9. Ask Price"`
}

func (c *QuoteClient) FetchQuote(ctx context.Context, from string, to string) (*domain.ExternalQuote, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/query"
	query := url.Values{}
	query.Set("function", "CURRENCY_EXCHANGE_RATE")
	query.Set("from_currency", from)
	query.Set("to_currency", to)
	query.Set("apikey", c.apiKey)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for pair %q/%q: %w", from, to, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request for pair %q/%q: %w", from, to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d for pair %q/%q: %s", resp.StatusCode, from, to, resp.Status)
	}

	var body quoteResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response for pair %q/%q: %w", from, to, err)
	}

	// The provider answers 200 with an empty object when it has no quote.
	if body.ExchangeRateData == nil {
		return nil, nil
	}

	return &domain.ExternalQuote{
		Bid:  body.ExchangeRateData.Bid,
		Ask:  body.ExchangeRateData.Ask,
		Rate: body.ExchangeRateData.Rate,
	}, nil
}

func NewQuoteClient(httpClient *http.Client, baseURL string, apiKey string) *QuoteClient {
	return &QuoteClient{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}
