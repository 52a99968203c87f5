package owners

import "time"

// Owner es la persona responsable de uno o más perros.
// UserID es el usuario que lo registró; es informativo, no restringe acceso.
type Owner struct {
	ID     string
	UserID string

	FirstName   string
	LastName    string
	PhoneNumber string

	CreatedAt time.Time
	UpdatedAt time.Time
}
