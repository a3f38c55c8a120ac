package dto

import "time"

// ListResponse listado completo de un recurso.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList construye la respuesta de listado (items nunca es null en JSON).
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// ErrorResponse cuerpo de error HTTP uniforme.
type ErrorResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Path      string            `json:"path"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// RefResponse referencia resumida (id, nombre) a otra entidad.
type RefResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
