package adapters

import (
	"context"
	"ratesmanager/internal/domain"

	"github.com/google/uuid"
)

type RateRepository interface {
	Create(ctx context.Context, rate *domain.ExchangeRate) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExchangeRate, error)
	GetByPair(ctx context.Context, from string, to string) (*domain.ExchangeRate, error)
	UpdatePrices(ctx context.Context, rate *domain.ExchangeRate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type QuoteClient interface {
	// FetchQuote returns (nil, nil) when the provider answered without a quote
	// payload for the pair.
	FetchQuote(ctx context.Context, from string, to string) (*domain.ExternalQuote, error)
}

type RatePublisher interface {
	PublishRateAdded(ctx context.Context, rate *domain.ExchangeRate) error
}
