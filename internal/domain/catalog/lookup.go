package catalog

import (
	"context"
	"errors"
)

// Exists lo usan otros módulos (dogs) para validar referencias sin importar repos.
func (s *Service) Exists(ctx context.Context, kind Kind, id string) (bool, error) {
	_, err := s.GetByID(ctx, kind, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
