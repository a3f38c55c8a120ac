package receipt

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
)

// Line línea de ticket enriquecida con el nombre del producto para impresión.
type Line struct {
	entity.TicketItem
	ProductName string
	Barcode     string
}

// Document datos completos de un ticket para generar su comprobante.
type Document struct {
	StoreName string
	Ticket    *entity.Ticket
	Cashier   string
	Lines     []Line
	Total     decimal.Decimal
}

// Generator genera la representación gráfica (PDF) del comprobante.
type Generator interface {
	GenerateReceiptPDF(ctx context.Context, doc Document) ([]byte, error)
}
