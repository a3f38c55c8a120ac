package entity

import "time"

// Tipos de evento de sesión.
const (
	SessionLogin  = "LOGIN"
	SessionLogout = "LOGOUT"
)

// SessionEvent registro de login/logout de un usuario.
type SessionEvent struct {
	ID        int64
	UserID    int64
	Type      string
	Timestamp time.Time
}
