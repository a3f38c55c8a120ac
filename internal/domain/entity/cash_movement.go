package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dirección del movimiento de efectivo.
const (
	CashIn  = "IN"  // entrada
	CashOut = "OUT" // salida
)

// CashMovement movimiento de efectivo de caja.
type CashMovement struct {
	ID          int64
	UserID      int64
	Type        string // IN, OUT
	Amount      decimal.Decimal
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
