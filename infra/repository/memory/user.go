package memory

import (
	"context"

	"github.com/rwalabs/bridgemaker/pkg/domain"
	userrepo "github.com/rwalabs/bridgemaker/pkg/repository/user"
)

type userRepository struct {
	ledger *Ledger
}

// NewUserRepository returns the user view over a shared ledger.
func NewUserRepository(l *Ledger) userrepo.Repository {
	return &userRepository{ledger: l}
}

func (r *userRepository) Create(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, u := range l.users {
		if u.Username == username {
			return nil, domain.ErrUsernameTaken
		}
	}

	u := &domain.User{
		ID:       l.nextUserID,
		Username: username,
		Password: password,
	}
	l.nextUserID++
	l.users[u.ID] = u

	c := *u
	return &c, nil
}

func (r *userRepository) Get(ctx context.Context, id int) (*domain.User, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	u, ok := l.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *userRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	l := r.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, u := range l.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
