package auth

// Role del usuario (solo dos valores).
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Claims es la información embebida en el token de sesión.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}
