package memory

import (
	"context"

	"github.com/freightline/tms-backend/internal/core/domain"
)

// UserStore is a fixed in-memory user table. Accounts are loaded once at
// startup and never change, so no locking is needed.
type UserStore struct {
	byUsername map[string]domain.User
	byID       map[string]domain.User
}

func NewUserStore(users []domain.User) *UserStore {
	st := &UserStore{
		byUsername: make(map[string]domain.User, len(users)),
		byID:       make(map[string]domain.User, len(users)),
	}
	for _, u := range users {
		st.byUsername[u.Username] = u
		st.byID[u.ID] = u
	}
	return st
}

// FindByUsername returns the user by exact username match.
func (st *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := st.byUsername[username]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return &u, nil
}

// FindByID returns the user by id.
func (st *UserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := st.byID[id]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return &u, nil
}
