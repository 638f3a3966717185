package memory

import (
	"context"
	"time"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
	marketrepo "github.com/rwalabs/bridgemaker/pkg/repository/market"
)

type marketRepository struct {
	ledger *Ledger
}

// NewMarketRepository returns the market data view over a shared ledger.
func NewMarketRepository(l *Ledger) marketrepo.Repository {
	return &marketRepository{ledger: l}
}

func (r *marketRepository) List(ctx context.Context) ([]*domain.MarketData, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*domain.MarketData, 0, len(l.marketData))
	for _, m := range l.marketData {
		c := *m
		out = append(out, &c)
	}
	return out, nil
}

func (r *marketRepository) GetByCategory(
	ctx context.Context,
	category domain.MarketCategory,
) (*domain.MarketData, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.marketData[category]
	if !ok {
		return nil, domain.ErrMarketDataNotFound
	}
	c := *m
	return &c, nil
}

func (r *marketRepository) Replace(
	ctx context.Context,
	category domain.MarketCategory,
	replace *dto.MarketDataReplace,
) (*domain.MarketData, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	// Wholesale overwrite, not a merge. Market data carries no integer
	// identity, so the id stays 0.
	m := &domain.MarketData{
		ID:            0,
		Category:      category,
		TotalValue:    replace.TotalValue,
		ChangePercent: replace.ChangePercent,
		UpdatedAt:     time.Now().UTC(),
	}
	l.marketData[category] = m

	c := *m
	return &c, nil
}
