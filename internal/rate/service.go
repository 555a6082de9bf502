package rate

import (
	"context"
	"errors"
	"fmt"
	"ratesmanager/internal/adapters"
	"ratesmanager/internal/domain"
	"ratesmanager/internal/platform/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Service resolves exchange rates: the store is a read-through cache over the
// external quote source, and every newly learned rate is announced on the
// queue best-effort.
type Service struct {
	repo      adapters.RateRepository
	quotes    adapters.QuoteClient
	publisher adapters.RatePublisher
	validator *Validator
}

func NewService(repo adapters.RateRepository, quotes adapters.QuoteClient, publisher adapters.RatePublisher, validator *Validator) *Service {
	return &Service{repo: repo, quotes: quotes, publisher: publisher, validator: validator}
}

// GetByPair returns the stored rate for the pair. On a store miss it fetches a
// quote from the external source, persists the result and publishes a rate
// added event. A stored rate is authoritative: no fetch, no event.
// Codes must already be validated by the boundary.
func (s *Service) GetByPair(ctx context.Context, from string, to string) (*domain.ExchangeRate, error) {
	stored, err := s.repo.GetByPair(ctx, from, to)
	if err == nil {
		metrics.RateLookupsTotal.WithLabelValues("hit").Inc()
		return stored, nil
	}
	if !errors.Is(err, domain.ErrRateNotFound) {
		return nil, err
	}

	metrics.RateLookupsTotal.WithLabelValues("miss").Inc()
	pair := domain.CurrencyPair{From: from, To: to}
	logrus.WithFields(logrus.Fields{"from": from, "to": to}).
		Warn("rate not found in store, falling back to quote source")

	quote, fetchErr := s.quotes.FetchQuote(ctx, from, to)
	if fetchErr != nil {
		metrics.QuoteFetchesTotal.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, fetchErr)
	}
	if quote == nil {
		metrics.QuoteFetchesTotal.WithLabelValues("not_found").Inc()
		return nil, &domain.QuoteNotFoundError{Pair: pair}
	}

	fetched, convErr := rateFromQuote(pair, quote)
	if convErr != nil {
		metrics.QuoteFetchesTotal.WithLabelValues("parse_error").Inc()
		logrus.WithError(convErr).WithFields(logrus.Fields{"from": from, "to": to}).
			Error("quote source returned unusable data")
		return nil, convErr
	}
	metrics.QuoteFetchesTotal.WithLabelValues("success").Inc()

	if _, createErr := s.repo.Create(ctx, fetched); createErr != nil {
		return nil, createErr
	}
	logrus.WithFields(logrus.Fields{
		"from": from, "to": to,
		"bid": fetched.Bid.String(), "ask": fetched.Ask.String(),
	}).Info("fetched and saved rate from quote source")

	// The write is committed; a canceled ctx only skips the event.
	s.publishRateAdded(ctx, fetched)

	return fetched, nil
}

// Add persists a caller-supplied rate and publishes the same rate added event
// as the fetch path.
func (s *Service) Add(ctx context.Context, from string, to string, bid, ask decimal.Decimal) (uuid.UUID, error) {
	if err := s.validator.ValidateRate(from, to, bid, ask); err != nil {
		return uuid.Nil, err
	}

	rate := &domain.ExchangeRate{FromCurrency: from, ToCurrency: to, Bid: bid, Ask: ask}
	id, err := s.repo.Create(ctx, rate)
	if err != nil {
		return uuid.Nil, err
	}
	logrus.WithFields(logrus.Fields{"id": id, "from": from, "to": to}).Info("exchange rate added")

	s.publishRateAdded(ctx, rate)

	return id, nil
}

// UpdatePrices overwrites bid/ask of an existing rate. The pair and id are
// immutable. Updates are not announced on the queue.
func (s *Service) UpdatePrices(ctx context.Context, id uuid.UUID, bid, ask decimal.Decimal) error {
	if err := s.validator.ValidatePrices(bid, ask); err != nil {
		return err
	}

	rate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	rate.Bid = bid
	rate.Ask = ask

	if err := s.repo.UpdatePrices(ctx, rate); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"id": id}).Info("exchange rate updated")
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"id": id}).Info("exchange rate deleted")
	return nil
}

// publishRateAdded is best-effort: a queue outage must never fail the primary
// operation, so failures are counted, logged and swallowed.
func (s *Service) publishRateAdded(ctx context.Context, rate *domain.ExchangeRate) {
	if err := s.publisher.PublishRateAdded(ctx, rate); err != nil {
		metrics.PublishFailuresTotal.Inc()
		logrus.WithError(err).WithFields(logrus.Fields{
			"from": rate.FromCurrency, "to": rate.ToCurrency,
		}).Warn("rate added event not published")
	}
}
