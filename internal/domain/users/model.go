package users

import (
	"time"

	"my-pets-api/internal/ports/auth"
)

// User de la aplicación. Inmutable salvo el reset de contraseña.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Lastname     string
	Role         auth.Role

	// Reset de contraseña: hash del token de un solo uso + vencimiento.
	ResetTokenHash    string
	ResetTokenExpires *time.Time

	CreatedAt time.Time
}
