package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MarketPrice holds the current buy-back reference prices for both metals.
type MarketPrice struct {
	GoldPrice   int64     `json:"gold_price"`
	SilverPrice int64     `json:"silver_price"`
	LastUpdated time.Time `json:"last_updated"`
}

// PricesRepo reads and writes the single market price row.
// RowID pins the row the original stored under MARKET_PRICE_ID.
type PricesRepo struct {
	Pool  *pgxpool.Pool
	RowID string
}

// Get returns the current market prices.
func (r PricesRepo) Get(ctx context.Context) (MarketPrice, error) {
	id, err := r.rowID()
	if err != nil {
		return MarketPrice{}, err
	}
	var (
		price   MarketPrice
		updated pgtype.Timestamptz
	)
	err = r.Pool.QueryRow(ctx, `
		SELECT gold_price, silver_price, last_updated
		FROM market_prices
		WHERE id = $1`, id).Scan(&price.GoldPrice, &price.SilverPrice, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return MarketPrice{}, ErrNotFound
		}
		return MarketPrice{}, err
	}
	if updated.Valid {
		price.LastUpdated = updated.Time
	}
	return price, nil
}

// Update writes both prices and the last-updated timestamp in one statement.
func (r PricesRepo) Update(ctx context.Context, gold, silver int64) (MarketPrice, error) {
	id, err := r.rowID()
	if err != nil {
		return MarketPrice{}, err
	}
	var (
		price   MarketPrice
		updated pgtype.Timestamptz
	)
	err = r.Pool.QueryRow(ctx, `
		UPDATE market_prices
		SET gold_price = $2, silver_price = $3, last_updated = now()
		WHERE id = $1
		RETURNING gold_price, silver_price, last_updated`, id, gold, silver).
		Scan(&price.GoldPrice, &price.SilverPrice, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return MarketPrice{}, ErrNotFound
		}
		return MarketPrice{}, err
	}
	if updated.Valid {
		price.LastUpdated = updated.Time
	}
	return price, nil
}

func (r PricesRepo) rowID() (pgtype.UUID, error) {
	var id pgtype.UUID
	if err := id.Scan(r.RowID); err != nil {
		return pgtype.UUID{}, errors.New("market price row id is not a valid uuid")
	}
	return id, nil
}
