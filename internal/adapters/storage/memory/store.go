package memory

import (
	"sync"

	"dogs-registry/internal/domain/catalog"
	"dogs-registry/internal/domain/dogs"
	"dogs-registry/internal/domain/owners"
	"dogs-registry/internal/domain/users"
)

// Store guarda todas las entidades bajo un mismo lock, así el borrado
// de un owner puede arrastrar sus perros como lo hace la FK en Postgres.
type Store struct {
	mu sync.RWMutex

	users   map[string]users.User
	owners  map[string]owners.Owner
	entries map[string]catalog.Entry
	dogs    map[string]dogs.Dog
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]users.User),
		owners:  make(map[string]owners.Owner),
		entries: make(map[string]catalog.Entry),
		dogs:    make(map[string]dogs.Dog),
	}
}
