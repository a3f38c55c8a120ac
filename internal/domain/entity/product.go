package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del punto de venta.
// CategoryID y SupplierID son referencias débiles (solo lookup).
type Product struct {
	ID           int64
	Barcode      string // código de barras, único
	Name         string
	CostPrice    decimal.Decimal
	SalePrice    decimal.Decimal
	SpecialPrice *decimal.Decimal // precio especial opcional
	Stock        int
	CategoryID   *int64
	SupplierID   *int64
	// Category y Supplier se llenan en lecturas con join; nil si no hay referencia.
	Category  *Category
	Supplier  *Supplier
	CreatedAt time.Time
	UpdatedAt time.Time
}
