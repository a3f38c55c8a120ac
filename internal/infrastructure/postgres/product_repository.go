package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.codigo_barras, p.nombre, p.precio_costo, p.precio_venta, p.precio_especial, p.stock,
	       p.categoria_id, p.proveedor_id, p.created_at, p.updated_at,
	       c.nombre, s.nombre
	FROM productos p
	LEFT JOIN categorias c ON c.id = p.categoria_id
	LEFT JOIN proveedores s ON s.id = p.proveedor_id`

// Create persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO productos (codigo_barras, nombre, precio_costo, precio_venta, precio_especial, stock,
		                       categoria_id, proveedor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Barcode, p.Name, p.CostPrice, p.SalePrice, p.SpecialPrice, p.Stock,
		p.CategoryID, p.SupplierID, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return writeError("insert producto", err)
	}
	return nil
}

// GetByID obtiene un producto con su categoría y proveedor; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, productSelect+` ORDER BY p.nombre, p.id`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update reescribe los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE productos
		SET codigo_barras = $2, nombre = $3, precio_costo = $4, precio_venta = $5, precio_especial = $6,
		    stock = $7, categoria_id = $8, proveedor_id = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Barcode, p.Name, p.CostPrice, p.SalePrice, p.SpecialPrice,
		p.Stock, p.CategoryID, p.SupplierID, p.UpdatedAt,
	)
	if err != nil {
		return writeError("update producto", err)
	}
	return notFoundIfNone(tag, "producto", p.ID)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return writeError("delete producto", err)
	}
	return notFoundIfNone(tag, "producto", id)
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p            entity.Product
		categoryName *string
		supplierName *string
	)
	err := row.Scan(
		&p.ID, &p.Barcode, &p.Name, &p.CostPrice, &p.SalePrice, &p.SpecialPrice, &p.Stock,
		&p.CategoryID, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
		&categoryName, &supplierName,
	)
	if err != nil {
		return nil, err
	}
	if p.CategoryID != nil && categoryName != nil {
		p.Category = &entity.Category{ID: *p.CategoryID, Name: *categoryName}
	}
	if p.SupplierID != nil && supplierName != nil {
		p.Supplier = &entity.Supplier{ID: *p.SupplierID, Name: *supplierName}
	}
	return &p, nil
}
