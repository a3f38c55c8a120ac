package postgres

import (
	"context"
	"fmt"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create inserta y asigna el ID.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO proveedores (nombre, contacto, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		s.Name, s.Contact, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return writeError("insert proveedor", err)
	}
	return nil
}

// GetByID obtiene un proveedor; (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(ctx,
		`SELECT id, nombre, contacto, created_at, updated_at FROM proveedores WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Contact, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &s, nil
}

// List devuelve los proveedores por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, contacto, created_at, updated_at FROM proveedores ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reescribe nombre y contacto.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE proveedores SET nombre = $2, contacto = $3, updated_at = $4 WHERE id = $1`,
		s.ID, s.Name, s.Contact, s.UpdatedAt,
	)
	if err != nil {
		return writeError("update proveedor", err)
	}
	return notFoundIfNone(tag, "proveedor", s.ID)
}

// Delete elimina el proveedor.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return writeError("delete proveedor", err)
	}
	return notFoundIfNone(tag, "proveedor", id)
}
