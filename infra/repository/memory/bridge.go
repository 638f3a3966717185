package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
	bridgerepo "github.com/rwalabs/bridgemaker/pkg/repository/bridge"
)

type bridgeRepository struct {
	ledger *Ledger
}

// NewBridgeRepository returns the bridge view over a shared ledger.
func NewBridgeRepository(l *Ledger) bridgerepo.Repository {
	return &bridgeRepository{ledger: l}
}

func (r *bridgeRepository) Create(
	ctx context.Context,
	create *dto.BridgeCreate,
) (*domain.Bridge, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	status := domain.BridgeStatusConfigured
	if create.Status != "" {
		status = domain.BridgeStatus(create.Status)
	}

	b := &domain.Bridge{
		ID:          l.nextBridgeID,
		Name:        create.Name,
		SourceChain: create.SourceChain,
		TargetChain: create.TargetChain,
		BridgeType:  domain.BridgeType(create.BridgeType),
		Status:      status,
		Owner:       create.Owner,
		// The fee is fixed by the platform regardless of caller input.
		DeploymentFee: domain.BridgeDeploymentFee,
		CreatedAt:     time.Now().UTC(),
	}
	l.nextBridgeID++
	l.bridges[b.ID] = b

	l.createActivityLocked(&dto.ActivityCreate{
		Type:        string(domain.ActivityBridgeDeployed),
		Description: fmt.Sprintf("Bridge %s deployed", b.Name),
		Amount:      "-$" + b.DeploymentFee,
		Owner:       b.Owner,
	})

	c := *b
	return &c, nil
}

func (r *bridgeRepository) Get(ctx context.Context, id int) (*domain.Bridge, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.bridges[id]
	if !ok {
		return nil, domain.ErrBridgeNotFound
	}
	c := *b
	return &c, nil
}

func (r *bridgeRepository) List(ctx context.Context) ([]*domain.Bridge, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*domain.Bridge, 0, len(l.bridges))
	for _, b := range l.bridges {
		c := *b
		out = append(out, &c)
	}
	return out, nil
}

func (r *bridgeRepository) ListByOwner(
	ctx context.Context,
	owner string,
) ([]*domain.Bridge, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*domain.Bridge, 0)
	for _, b := range l.bridges {
		if b.Owner != owner {
			continue
		}
		c := *b
		out = append(out, &c)
	}
	return out, nil
}

func (r *bridgeRepository) Update(
	ctx context.Context,
	id int,
	update *dto.BridgeUpdate,
) (*domain.Bridge, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.bridges[id]
	if !ok {
		return nil, domain.ErrBridgeNotFound
	}

	if update.Name != nil {
		b.Name = *update.Name
	}
	if update.SourceChain != nil {
		b.SourceChain = *update.SourceChain
	}
	if update.TargetChain != nil {
		b.TargetChain = *update.TargetChain
	}
	if update.BridgeType != nil {
		b.BridgeType = domain.BridgeType(*update.BridgeType)
	}
	if update.Status != nil {
		b.Status = domain.BridgeStatus(*update.Status)
	}
	if update.Owner != nil {
		b.Owner = *update.Owner
	}

	c := *b
	return &c, nil
}
