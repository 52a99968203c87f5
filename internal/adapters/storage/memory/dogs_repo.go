package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"dogs-registry/internal/domain/catalog"
	"dogs-registry/internal/domain/dogs"
)

type dogRepo struct {
	st *Store
}

func NewDogRepo(st *Store) dogs.Repository {
	return &dogRepo{st: st}
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.st.dogs[d.ID]; exists {
		return errors.New("dog already exists")
	}
	if err := r.checkRefs(d); err != nil {
		return err
	}
	r.st.dogs[d.ID] = d
	return nil
}

func (r *dogRepo) Update(ctx context.Context, d dogs.Dog) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.dogs[d.ID]; !exists {
		return dogs.ErrNotFound
	}
	if err := r.checkRefs(d); err != nil {
		return err
	}
	r.st.dogs[d.ID] = d
	return nil
}

func (r *dogRepo) Delete(ctx context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.dogs[id]; !exists {
		return dogs.ErrNotFound
	}
	delete(r.st.dogs, id)
	return nil
}

func (r *dogRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	d, ok := r.st.dogs[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return d, nil
}

func (r *dogRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]dogs.Dog, 0, len(r.st.dogs))
	for _, d := range r.st.dogs {
		out = append(out, d)
	}

	// Orden estable por created_at asc, id como desempate
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// checkRefs replica las FKs. Se llama con el lock tomado.
func (r *dogRepo) checkRefs(d dogs.Dog) error {
	if _, ok := r.st.owners[d.OwnerID]; !ok {
		return dogs.ErrInvalidReference
	}
	refs := map[catalog.Kind]string{
		catalog.KindBreed:   d.BreedID,
		catalog.KindCountry: d.CountryID,
		catalog.KindHobby:   d.HobbyID,
	}
	for kind, id := range refs {
		if e, ok := r.st.entries[id]; !ok || e.Kind != kind {
			return dogs.ErrInvalidReference
		}
	}
	return nil
}
