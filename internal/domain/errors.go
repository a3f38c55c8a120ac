package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// Error es un error de dominio con un mensaje apto para el cliente.
// Kind es uno de los sentinelas de arriba; Cause (opcional) queda solo para logs.
type Error struct {
	Kind  error
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

// Unwrap permite errors.Is(err, domain.ErrConflict) y errors.Is(err, causa).
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// NotFoundf construye un ErrNotFound con mensaje.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Conflictf construye un ErrConflict con mensaje.
func Conflictf(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Msg: fmt.Sprintf(format, args...)}
}

// Invalidf construye un ErrInvalidInput con mensaje.
func Invalidf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// Invalid envuelve una falla de persistencia como entrada inválida genérica.
func Invalid(msg string, cause error) error {
	return &Error{Kind: ErrInvalidInput, Msg: msg, Cause: cause}
}

// PublicMessage devuelve el mensaje seguro para el cliente, o "" si err no es un *Error.
func PublicMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Msg
	}
	return ""
}
