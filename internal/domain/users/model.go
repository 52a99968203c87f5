package users

import "time"

// User es el principal que se autentica contra la API.
type User struct {
	ID           string
	Username     string
	PasswordHash string

	CreatedAt time.Time
}
