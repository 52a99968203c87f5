package dogs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dogs-registry/internal/domain/catalog"
	"dogs-registry/internal/platform/validate"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
)

type Service struct {
	repo    Repository
	owners  OwnerLookup
	catalog CatalogLookup
	now     func() time.Time
}

func NewService(repo Repository, owners OwnerLookup, cat CatalogLookup) *Service {
	return &Service{
		repo:    repo,
		owners:  owners,
		catalog: cat,
		now:     time.Now,
	}
}

// Input son los campos editables de un perro (POST y PUT).
type Input struct {
	Name    string `json:"name" validate:"notblank,max=100"`
	Breed   string `json:"breed" validate:"required,uuid"`
	Owner   string `json:"owner" validate:"required,uuid"`
	Country string `json:"country" validate:"required,uuid"`
	Hobby   string `json:"hobby" validate:"required,uuid"`
}

func (in Input) normalized() Input {
	return Input{
		Name:    strings.TrimSpace(in.Name),
		Breed:   strings.TrimSpace(in.Breed),
		Owner:   strings.TrimSpace(in.Owner),
		Country: strings.TrimSpace(in.Country),
		Hobby:   strings.TrimSpace(in.Hobby),
	}
}

// PatchInput: punteros para PATCH real, nil = no tocar.
type PatchInput struct {
	Name    *string
	Breed   *string
	Owner   *string
	Country *string
	Hobby   *string
}

func (s *Service) Create(ctx context.Context, userID string, in Input) (Dog, error) {
	if strings.TrimSpace(userID) == "" {
		return Dog{}, ErrInvalidInput
	}
	in = in.normalized()
	if err := s.check(ctx, in); err != nil {
		return Dog{}, err
	}

	now := s.now()
	d := Dog{
		ID:        uuid.NewString(),
		Name:      in.Name,
		BreedID:   in.Breed,
		OwnerID:   in.Owner,
		CountryID: in.Country,
		HobbyID:   in.Hobby,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// Replace aplica un PUT. UserID no cambia.
func (s *Service) Replace(ctx context.Context, id string, in Input) (Dog, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	return s.save(ctx, current, in)
}

func (s *Service) Patch(ctx context.Context, id string, in PatchInput) (Dog, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}

	merged := Input{
		Name:    current.Name,
		Breed:   current.BreedID,
		Owner:   current.OwnerID,
		Country: current.CountryID,
		Hobby:   current.HobbyID,
	}
	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Breed != nil {
		merged.Breed = *in.Breed
	}
	if in.Owner != nil {
		merged.Owner = *in.Owner
	}
	if in.Country != nil {
		merged.Country = *in.Country
	}
	if in.Hobby != nil {
		merged.Hobby = *in.Hobby
	}
	return s.save(ctx, current, merged)
}

func (s *Service) save(ctx context.Context, current Dog, in Input) (Dog, error) {
	in = in.normalized()
	if err := s.check(ctx, in); err != nil {
		return Dog{}, err
	}

	current.Name = in.Name
	current.BreedID = in.Breed
	current.OwnerID = in.Owner
	current.CountryID = in.Country
	current.HobbyID = in.Hobby
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Dog{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Dog{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve todos los perros, sin importar quién los registró.
func (s *Service) List(ctx context.Context) ([]Dog, error) {
	return s.repo.List(ctx)
}

// check valida el payload y que existan todas las referencias.
func (s *Service) check(ctx context.Context, in Input) error {
	if err := validate.Struct(in); err != nil {
		return err
	}

	missing := validate.Errors{}

	ok, err := s.owners.Exists(ctx, in.Owner)
	if err != nil {
		return err
	}
	if !ok {
		missing = append(missing, validate.Field("owner", "does not exist")...)
	}

	refs := []struct {
		field string
		kind  catalog.Kind
		id    string
	}{
		{"breed", catalog.KindBreed, in.Breed},
		{"country", catalog.KindCountry, in.Country},
		{"hobby", catalog.KindHobby, in.Hobby},
	}
	for _, ref := range refs {
		ok, err := s.catalog.Exists(ctx, ref.kind, ref.id)
		if err != nil {
			return err
		}
		if !ok {
			missing = append(missing, validate.Field(ref.field, "does not exist")...)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidReference, missing)
	}
	return nil
}
