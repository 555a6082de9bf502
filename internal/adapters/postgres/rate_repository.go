package postgres

import (
	"context"
	"errors"
	"fmt"
	"ratesmanager/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RateRepository struct {
	pool *pgxpool.Pool
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}

func (r *RateRepository) Create(ctx context.Context, rate *domain.ExchangeRate) (uuid.UUID, error) {
	const q = `
        insert into exchange_rates (id, from_currency, to_currency, bid, ask)
        values ($1, $2, $3, $4, $5)
        returning created_at, updated_at;
    `

	id := uuid.New()
	if err := r.pool.QueryRow(ctx, q, id, rate.FromCurrency, rate.ToCurrency, rate.Bid, rate.Ask).Scan(
		&rate.CreatedAt,
		&rate.UpdatedAt,
	); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert rate for pair %q/%q: %w", rate.FromCurrency, rate.ToCurrency, err)
	}

	rate.ID = id
	return id, nil
}

func (r *RateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExchangeRate, error) {
	const q = `
        select id, from_currency, to_currency, bid, ask, created_at, updated_at
        from exchange_rates
        where id = $1;
    `

	rate, err := scanRate(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRateNotFound
		}
		return nil, fmt.Errorf("failed to select rate %s: %w", id, err)
	}
	return rate, nil
}

// GetByPair returns the oldest stored rate for the ordered pair. Duplicates are
// possible, so the oldest row keeps responses stable across lookups.
func (r *RateRepository) GetByPair(ctx context.Context, from string, to string) (*domain.ExchangeRate, error) {
	const q = `
        select id, from_currency, to_currency, bid, ask, created_at, updated_at
        from exchange_rates
        where from_currency = $1 and to_currency = $2
        order by created_at
        limit 1;
    `

	rate, err := scanRate(r.pool.QueryRow(ctx, q, from, to))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRateNotFound
		}
		return nil, fmt.Errorf("failed to select rate for pair %q/%q: %w", from, to, err)
	}
	return rate, nil
}

func (r *RateRepository) UpdatePrices(ctx context.Context, rate *domain.ExchangeRate) error {
	const q = `
        update exchange_rates
        set bid = $2, ask = $3, updated_at = now()
        where id = $1;
    `

	tag, err := r.pool.Exec(ctx, q, rate.ID, rate.Bid, rate.Ask)
	if err != nil {
		return fmt.Errorf("failed to update rate %s: %w", rate.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRateNotFound
	}
	return nil
}

func (r *RateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `delete from exchange_rates where id = $1;`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("failed to delete rate %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRateNotFound
	}
	return nil
}

func scanRate(row pgx.Row) (*domain.ExchangeRate, error) {
	var rate domain.ExchangeRate
	if err := row.Scan(
		&rate.ID,
		&rate.FromCurrency,
		&rate.ToCurrency,
		&rate.Bid,
		&rate.Ask,
		&rate.CreatedAt,
		&rate.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rate, nil
}
