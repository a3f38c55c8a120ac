package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket es una venta: (usuario, día calendario, número) es único.
type Ticket struct {
	ID           int64
	UserID       int64
	TicketNumber int
	Date         time.Time // se guarda con la hora completa
	Day          time.Time // día calendario de Date en la zona configurada
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TicketItem es una línea de ticket. Total = Quantity × UnitPrice, persistido.
type TicketItem struct {
	ID        int64
	TicketID  int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
