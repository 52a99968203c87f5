package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"dogs-registry/internal/platform/validate"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
)

const maxNameLen = 100

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

func (s *Service) Create(ctx context.Context, kind Kind, name string) (Entry, error) {
	if !kind.Valid() {
		return Entry{}, ErrInvalidInput
	}

	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return Entry{}, validate.Field(kind.NameField(), "is required")
	case utf8.RuneCountInString(name) > maxNameLen:
		return Entry{}, validate.Field(kind.NameField(), fmt.Sprintf("must not exceed %d characters", maxNameLen))
	}

	if _, err := s.repo.GetByName(ctx, kind, name); err == nil {
		return Entry{}, fmt.Errorf("%s %q: %w", kind, name, ErrConflict)
	} else if !errors.Is(err, ErrNotFound) {
		return Entry{}, err
	}

	e := Entry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      name,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, kind Kind, id string) (Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Entry{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, kind, id)
}

func (s *Service) GetByName(ctx context.Context, kind Kind, name string) (Entry, error) {
	return s.repo.GetByName(ctx, kind, strings.TrimSpace(name))
}

func (s *Service) List(ctx context.Context, kind Kind) ([]Entry, error) {
	if !kind.Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, kind)
}
