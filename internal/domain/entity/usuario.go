package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin = "admin"
	RolUser  = "user"
)

// Usuario representa un operario o administrador de la planta.
type Usuario struct {
	ID           int64
	FullName     string
	Email        string // siempre en minúsculas, único
	Rol          string // admin, user
	Activo       bool
	PasswordHash string // bcrypt; los hashes legados en claro se migran al hacer login
	FechaAlta    *time.Time
}
