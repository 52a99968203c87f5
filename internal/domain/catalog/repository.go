package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, e Entry) error
	GetByID(ctx context.Context, kind Kind, id string) (Entry, error)
	GetByName(ctx context.Context, kind Kind, name string) (Entry, error)
	// List ordena por nombre.
	List(ctx context.Context, kind Kind) ([]Entry, error)
}
