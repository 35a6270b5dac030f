package entity

import "time"

// Roles de usuario.
const (
	RolAdmin       = "admin"
	RolAlmacenista = "almacenista"
	RolCortador    = "cortador"
)

// Usuario de la aplicación. PasswordHash es bcrypt.
type Usuario struct {
	ID           string
	Email        string
	Nombre       string
	PasswordHash string
	Rol          string
	Estado       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
