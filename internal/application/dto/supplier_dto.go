package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Nombre   string  `json:"nombre" validate:"required,max=160"`
	Contacto *string `json:"contacto,omitempty" validate:"omitempty,max=255"`
}

// UpdateSupplierRequest actualización parcial de proveedor.
type UpdateSupplierRequest struct {
	Nombre   *string `json:"nombre,omitempty" validate:"omitempty,min=1,max=160"`
	Contacto *string `json:"contacto,omitempty" validate:"omitempty,max=255"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Contacto  *string   `json:"contacto"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
