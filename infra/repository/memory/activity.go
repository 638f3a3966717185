package memory

import (
	"context"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	"github.com/rwalabs/bridgemaker/pkg/dto"
	activityrepo "github.com/rwalabs/bridgemaker/pkg/repository/activity"
)

type activityRepository struct {
	ledger *Ledger
}

// NewActivityRepository returns the activity log view over a shared ledger.
func NewActivityRepository(l *Ledger) activityrepo.Repository {
	return &activityRepository{ledger: l}
}

func (r *activityRepository) Create(
	ctx context.Context,
	create *dto.ActivityCreate,
) (*domain.Activity, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.createActivityLocked(create)
	c := *a
	return &c, nil
}

func (r *activityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.sortedActivitiesLocked("", false), nil
}

func (r *activityRepository) ListByOwner(
	ctx context.Context,
	owner string,
) ([]*domain.Activity, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.sortedActivitiesLocked(owner, true), nil
}
