package dogs

import "time"

// Dog representa el perfil de un perro registrado.
//
// UserID es redundante con Owner.UserID y no se valida contra él:
// la propiedad es informativa, cualquier usuario autenticado puede editar cualquier perro.
type Dog struct {
	ID   string
	Name string

	BreedID   string
	OwnerID   string
	CountryID string
	HobbyID   string

	UserID string

	CreatedAt time.Time
	UpdatedAt time.Time
}
