package auth

import "time"

// Claims representa la información extraída del token.
type Claims struct {
	UserID   string
	Username string
}

// Token es un token emitido para un usuario.
type Token struct {
	Value     string
	ExpiresAt time.Time
}
