package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	FullName     string
	Email        *string // opcional; único cuando está presente
	PasswordHash string  // bcrypt hash, nunca sale del dominio
	Role         string  // admin, empleado
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
