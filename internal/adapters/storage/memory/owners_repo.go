package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"dogs-registry/internal/domain/owners"
)

type ownerRepo struct {
	st *Store
}

func NewOwnerRepo(st *Store) owners.Repository {
	return &ownerRepo{st: st}
}

func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.st.owners[o.ID]; exists {
		return errors.New("owner already exists")
	}
	r.st.owners[o.ID] = o
	return nil
}

func (r *ownerRepo) Update(ctx context.Context, o owners.Owner) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.owners[o.ID]; !exists {
		return owners.ErrNotFound
	}
	r.st.owners[o.ID] = o
	return nil
}

// Delete borra el owner y en cascada sus perros.
func (r *ownerRepo) Delete(ctx context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.owners[id]; !exists {
		return owners.ErrNotFound
	}
	delete(r.st.owners, id)

	for dogID, d := range r.st.dogs {
		if d.OwnerID == id {
			delete(r.st.dogs, dogID)
		}
	}
	return nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	o, ok := r.st.owners[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownerRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.st.owners))
	for _, o := range r.st.owners {
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
