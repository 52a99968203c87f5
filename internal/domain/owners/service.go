package owners

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"dogs-registry/internal/platform/validate"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input son los campos editables de un owner (POST y PUT).
type Input struct {
	FirstName   string `json:"first_name" validate:"notblank,max=50"`
	LastName    string `json:"last_name" validate:"notblank,max=50"`
	PhoneNumber string `json:"phone_number" validate:"notblank,max=20"`
}

func (in Input) normalized() Input {
	return Input{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
	}
}

// PatchInput: nil = no tocar.
type PatchInput struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

func (s *Service) Create(ctx context.Context, userID string, in Input) (Owner, error) {
	if strings.TrimSpace(userID) == "" {
		return Owner{}, ErrInvalidInput
	}
	in = in.normalized()
	if err := validate.Struct(in); err != nil {
		return Owner{}, err
	}

	now := s.now()
	o := Owner{
		ID:          uuid.NewString(),
		UserID:      userID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

// Replace aplica un PUT: reemplaza todos los campos editables.
func (s *Service) Replace(ctx context.Context, id string, in Input) (Owner, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}
	return s.save(ctx, current, in)
}

// Patch aplica solo los campos presentes.
func (s *Service) Patch(ctx context.Context, id string, in PatchInput) (Owner, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	merged := Input{
		FirstName:   current.FirstName,
		LastName:    current.LastName,
		PhoneNumber: current.PhoneNumber,
	}
	if in.FirstName != nil {
		merged.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		merged.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		merged.PhoneNumber = *in.PhoneNumber
	}
	return s.save(ctx, current, merged)
}

func (s *Service) save(ctx context.Context, current Owner, in Input) (Owner, error) {
	in = in.normalized()
	if err := validate.Struct(in); err != nil {
		return Owner{}, err
	}

	current.FirstName = in.FirstName
	current.LastName = in.LastName
	current.PhoneNumber = in.PhoneNumber
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Owner{}, err
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

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Owner{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve todos los owners, sin filtrar por usuario.
func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}
