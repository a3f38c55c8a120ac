package dto

import "time"

// CreateSessionEventRequest entrada para registrar un evento de sesión.
type CreateSessionEventRequest struct {
	UsuarioID *int64  `json:"usuarioId,omitempty" validate:"omitempty,gt=0"`
	Tipo      string  `json:"tipo" validate:"required,oneof=LOGIN LOGOUT"`
	Timestamp *string `json:"timestamp,omitempty"`
}

// UpdateSessionEventRequest corrección parcial de un evento.
type UpdateSessionEventRequest struct {
	UsuarioID *int64  `json:"usuarioId,omitempty" validate:"omitempty,gt=0"`
	Tipo      *string `json:"tipo,omitempty" validate:"omitempty,oneof=LOGIN LOGOUT"`
	Timestamp *string `json:"timestamp,omitempty"`
}

// SessionEventResponse salida de un evento de sesión.
type SessionEventResponse struct {
	ID        int64     `json:"id"`
	UsuarioID int64     `json:"usuarioId"`
	Tipo      string    `json:"tipo"`
	Timestamp time.Time `json:"timestamp"`
}
