package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"dogs-registry/internal/domain/catalog"
)

type catalogRepo struct {
	st *Store
}

func NewCatalogRepo(st *Store) catalog.Repository {
	return &catalogRepo{st: st}
}

func (r *catalogRepo) Create(ctx context.Context, e catalog.Entry) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("entry id required")
	}
	if _, exists := r.st.entries[e.ID]; exists {
		return errors.New("entry already exists")
	}
	for _, other := range r.st.entries {
		if other.Kind == e.Kind && other.Name == e.Name {
			return catalog.ErrConflict
		}
	}
	r.st.entries[e.ID] = e
	return nil
}

func (r *catalogRepo) GetByID(ctx context.Context, kind catalog.Kind, id string) (catalog.Entry, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	e, ok := r.st.entries[id]
	if !ok || e.Kind != kind {
		return catalog.Entry{}, catalog.ErrNotFound
	}
	return e, nil
}

func (r *catalogRepo) GetByName(ctx context.Context, kind catalog.Kind, name string) (catalog.Entry, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	for _, e := range r.st.entries {
		if e.Kind == kind && e.Name == name {
			return e, nil
		}
	}
	return catalog.Entry{}, catalog.ErrNotFound
}

func (r *catalogRepo) List(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]catalog.Entry, 0)
	for _, e := range r.st.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}
