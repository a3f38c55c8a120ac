package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTicketRequest entrada para emitir un ticket. El número se calcula en el servidor.
// Sin usuarioId se usa el usuario autenticado; sin fecha, la hora actual.
type CreateTicketRequest struct {
	UsuarioID *int64  `json:"usuarioId,omitempty" validate:"omitempty,gt=0"`
	Fecha     *string `json:"fecha,omitempty"`
}

// UpdateTicketRequest actualización parcial de ticket (corrección administrativa).
type UpdateTicketRequest struct {
	UsuarioID    *int64  `json:"usuarioId,omitempty" validate:"omitempty,gt=0"`
	NumeroTicket *int    `json:"numeroTicket,omitempty" validate:"omitempty,gte=1"`
	Fecha        *string `json:"fecha,omitempty"`
}

// TicketResponse salida de un ticket.
type TicketResponse struct {
	ID           int64     `json:"id"`
	UsuarioID    int64     `json:"usuarioId"`
	NumeroTicket int       `json:"numeroTicket"`
	Fecha        time.Time `json:"fecha"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateTicketItemRequest entrada para agregar una línea a un ticket.
type CreateTicketItemRequest struct {
	TicketID       int64           `json:"ticketId" validate:"required,gt=0"`
	ProductoID     int64           `json:"productoId" validate:"required,gt=0"`
	Cantidad       int             `json:"cantidad" validate:"gte=1"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" validate:"gte=0,money"`
}

// UpdateTicketItemRequest actualización parcial; el total se recalcula si cambia cantidad o precio.
type UpdateTicketItemRequest struct {
	TicketID       *int64           `json:"ticketId,omitempty" validate:"omitempty,gt=0"`
	ProductoID     *int64           `json:"productoId,omitempty" validate:"omitempty,gt=0"`
	Cantidad       *int             `json:"cantidad,omitempty" validate:"omitempty,gte=1"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario,omitempty" validate:"omitempty,gte=0,money"`
}

// TicketItemResponse salida de una línea de ticket.
type TicketItemResponse struct {
	ID             int64           `json:"id"`
	TicketID       int64           `json:"ticketId"`
	ProductoID     int64           `json:"productoId"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
