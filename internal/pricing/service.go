package pricing

import (
	"context"
	"errors"

	"github.com/silvergold-id/backend-silvergold/internal/common"
	"github.com/silvergold-id/backend-silvergold/internal/obs"
	"github.com/silvergold-id/backend-silvergold/internal/repo"
)

// PriceStore is the slice of the data store holding the market price row.
type PriceStore interface {
	Get(ctx context.Context) (repo.MarketPrice, error)
	Update(ctx context.Context, gold, silver int64) (repo.MarketPrice, error)
}

// Service proxies market price reads and the single admin write.
type Service struct {
	Store PriceStore
}

// Get returns the stored market prices.
func (s *Service) Get(ctx context.Context) (repo.MarketPrice, error) {
	price, err := s.Store.Get(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return repo.MarketPrice{}, common.NewNotFoundError("market prices not found")
		}
		return repo.MarketPrice{}, common.NewDependencyError("failed to fetch market prices", err)
	}
	return price, nil
}

// Update writes both prices wholesale. Both values must be positive; a
// rejected update leaves the stored row untouched.
func (s *Service) Update(ctx context.Context, gold, silver int64) (repo.MarketPrice, error) {
	if gold <= 0 || silver <= 0 {
		recordUpdate("rejected")
		var missing []string
		if gold <= 0 {
			missing = append(missing, "gold")
		}
		if silver <= 0 {
			missing = append(missing, "silver")
		}
		return repo.MarketPrice{}, common.NewValidationError("gold and silver prices are required and must be positive", map[string]any{"fields": missing})
	}
	price, err := s.Store.Update(ctx, gold, silver)
	if err != nil {
		recordUpdate("error")
		if errors.Is(err, repo.ErrNotFound) {
			return repo.MarketPrice{}, common.NewNotFoundError("market prices not found")
		}
		return repo.MarketPrice{}, common.NewDependencyError("failed to update market prices", err)
	}
	recordUpdate("ok")
	return price, nil
}

func recordUpdate(result string) {
	if obs.MarketPriceUpdateTotal != nil {
		obs.MarketPriceUpdateTotal.WithLabelValues(result).Inc()
	}
}
