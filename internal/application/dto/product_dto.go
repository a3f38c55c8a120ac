package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CodigoBarras   string           `json:"codigoBarras" validate:"required,max=64"`
	Nombre         string           `json:"nombre" validate:"required,max=200"`
	PrecioCosto    decimal.Decimal  `json:"precioCosto" validate:"gte=0,money"`
	PrecioVenta    decimal.Decimal  `json:"precioVenta" validate:"gte=0,money"`
	PrecioEspecial *decimal.Decimal `json:"precioEspecial,omitempty" validate:"omitempty,gte=0,money"`
	Stock          int              `json:"stock" validate:"gte=0"`
	CategoriaID    *int64           `json:"categoriaId,omitempty" validate:"omitempty,gt=0"`
	ProveedorID    *int64           `json:"proveedorId,omitempty" validate:"omitempty,gt=0"`
}

// UpdateProductRequest actualización parcial: solo cambian los campos presentes.
// Limpiar nombra los campos opcionales que pasan a NULL (un null en JSON equivale a ausente).
type UpdateProductRequest struct {
	CodigoBarras   *string          `json:"codigoBarras,omitempty" validate:"omitempty,min=1,max=64"`
	Nombre         *string          `json:"nombre,omitempty" validate:"omitempty,min=1,max=200"`
	PrecioCosto    *decimal.Decimal `json:"precioCosto,omitempty" validate:"omitempty,gte=0,money"`
	PrecioVenta    *decimal.Decimal `json:"precioVenta,omitempty" validate:"omitempty,gte=0,money"`
	PrecioEspecial *decimal.Decimal `json:"precioEspecial,omitempty" validate:"omitempty,gte=0,money"`
	Stock          *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	CategoriaID    *int64           `json:"categoriaId,omitempty" validate:"omitempty,gt=0"`
	ProveedorID    *int64           `json:"proveedorId,omitempty" validate:"omitempty,gt=0"`
	Limpiar        []string         `json:"limpiar,omitempty" validate:"omitempty,dive,oneof=precioEspecial categoriaId proveedorId"`
}

// Campos de producto que admiten Limpiar.
const (
	FieldPrecioEspecial = "precioEspecial"
	FieldCategoriaID    = "categoriaId"
	FieldProveedorID    = "proveedorId"
)

// ProductResponse salida de un producto con su categoría y proveedor resumidos.
type ProductResponse struct {
	ID             int64            `json:"id"`
	CodigoBarras   string           `json:"codigoBarras"`
	Nombre         string           `json:"nombre"`
	PrecioCosto    decimal.Decimal  `json:"precioCosto"`
	PrecioVenta    decimal.Decimal  `json:"precioVenta"`
	PrecioEspecial *decimal.Decimal `json:"precioEspecial,omitempty"`
	Stock          int              `json:"stock"`
	CategoriaID    *int64           `json:"categoriaId"`
	ProveedorID    *int64           `json:"proveedorId"`
	Categoria      *RefResponse     `json:"categoria,omitempty"`
	Proveedor      *RefResponse     `json:"proveedor,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
