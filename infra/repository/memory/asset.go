package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
	assetrepo "github.com/rwalabs/bridgemaker/pkg/repository/asset"
)

type assetRepository struct {
	ledger *Ledger
}

// NewAssetRepository returns the asset view over a shared ledger.
func NewAssetRepository(l *Ledger) assetrepo.Repository {
	return &assetRepository{ledger: l}
}

func (r *assetRepository) Create(
	ctx context.Context,
	create *dto.AssetCreate,
) (*domain.Asset, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	decimals := 18
	if create.Decimals != nil {
		decimals = *create.Decimals
	}
	status := domain.AssetStatusActive
	if create.Status != "" {
		status = domain.AssetStatus(create.Status)
	}

	a := &domain.Asset{
		ID:          l.nextAssetID,
		Name:        create.Name,
		Type:        domain.AssetType(create.Type),
		Description: create.Description,
		Value:       create.Value,
		TokenSymbol: create.TokenSymbol,
		TotalSupply: create.TotalSupply,
		Decimals:    decimals,
		Owner:       create.Owner,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	l.nextAssetID++
	l.assets[a.ID] = a

	// Every asset creation records exactly one activity, inside the same
	// critical section as the insert.
	l.createActivityLocked(&dto.ActivityCreate{
		Type:        string(domain.ActivityAssetCreated),
		Description: fmt.Sprintf("Asset %s tokenized", a.Name),
		Amount:      "+$" + a.Value,
		Owner:       a.Owner,
	})

	c := *a
	return &c, nil
}

func (r *assetRepository) Get(ctx context.Context, id int) (*domain.Asset, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.assets[id]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	c := *a
	return &c, nil
}

func (r *assetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*domain.Asset, 0, len(l.assets))
	for _, a := range l.assets {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (r *assetRepository) ListByOwner(
	ctx context.Context,
	owner string,
) ([]*domain.Asset, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*domain.Asset, 0)
	for _, a := range l.assets {
		if a.Owner != owner {
			continue
		}
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (r *assetRepository) Update(
	ctx context.Context,
	id int,
	update *dto.AssetUpdate,
) (*domain.Asset, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.assets[id]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}

	// Shallow merge: only fields present in the request overwrite the prior
	// value. Id and createdAt are not representable in the DTO.
	if update.Name != nil {
		a.Name = *update.Name
	}
	if update.Type != nil {
		a.Type = domain.AssetType(*update.Type)
	}
	if update.Description != nil {
		a.Description = *update.Description
	}
	if update.Value != nil {
		a.Value = *update.Value
	}
	if update.TokenSymbol != nil {
		a.TokenSymbol = *update.TokenSymbol
	}
	if update.TotalSupply != nil {
		a.TotalSupply = *update.TotalSupply
	}
	if update.Decimals != nil {
		a.Decimals = *update.Decimals
	}
	if update.Owner != nil {
		a.Owner = *update.Owner
	}
	if update.Status != nil {
		a.Status = domain.AssetStatus(*update.Status)
	}

	c := *a
	return &c, nil
}
