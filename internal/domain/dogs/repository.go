package dogs

import "context"

type Repository interface {
	Create(ctx context.Context, d Dog) error
	Update(ctx context.Context, d Dog) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Dog, error)
	// List devuelve todos los perros ordenados por created_at asc.
	List(ctx context.Context) ([]Dog, error)
}
