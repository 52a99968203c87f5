package dogs

import (
	"context"

	"dogs-registry/internal/domain/catalog"
)

// OwnerLookup y CatalogLookup evitan depender de los repos de otros módulos.
type OwnerLookup interface {
	Exists(ctx context.Context, ownerID string) (bool, error)
}

type CatalogLookup interface {
	Exists(ctx context.Context, kind catalog.Kind, id string) (bool, error)
}
