package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCashMovementRequest entrada para registrar un movimiento de efectivo.
type CreateCashMovementRequest struct {
	UsuarioID   *int64          `json:"usuarioId,omitempty" validate:"omitempty,gt=0"`
	Tipo        string          `json:"tipo" validate:"required,oneof=IN OUT"`
	Monto       decimal.Decimal `json:"monto" validate:"gte=0,money"`
	Descripcion *string         `json:"descripcion,omitempty" validate:"omitempty,max=255"`
}

// UpdateCashMovementRequest corrección parcial de un movimiento.
type UpdateCashMovementRequest struct {
	UsuarioID   *int64           `json:"usuarioId,omitempty" validate:"omitempty,gt=0"`
	Tipo        *string          `json:"tipo,omitempty" validate:"omitempty,oneof=IN OUT"`
	Monto       *decimal.Decimal `json:"monto,omitempty" validate:"omitempty,gte=0,money"`
	Descripcion *string          `json:"descripcion,omitempty" validate:"omitempty,max=255"`
}

// CashMovementResponse salida de un movimiento de efectivo.
type CashMovementResponse struct {
	ID          int64           `json:"id"`
	UsuarioID   int64           `json:"usuarioId"`
	Tipo        string          `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion *string         `json:"descripcion"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
