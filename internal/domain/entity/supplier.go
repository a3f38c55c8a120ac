package entity

import "time"

// Supplier representa un proveedor. Name es único; Contact es libre (email, teléfono...).
type Supplier struct {
	ID        int64
	Name      string
	Contact   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
