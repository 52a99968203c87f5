package memory

import (
	"context"
	"errors"
	"strings"

	"dogs-registry/internal/domain/users"
)

type userRepo struct {
	st *Store
}

func NewUserRepo(st *Store) users.Repository {
	return &userRepo{st: st}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	for _, other := range r.st.users {
		if other.Username == u.Username {
			return users.ErrConflict
		}
	}
	r.st.users[u.ID] = u
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	u, ok := r.st.users[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	for _, u := range r.st.users {
		if u.Username == username {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}
