package owners

import (
	"context"
	"errors"
)

// Exists se usa desde dogs para validar la referencia sin ciclos de imports.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.GetByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
