package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
)

// CategoryRepo categorías en memoria.
type CategoryRepo struct{ s *Store }

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

func (r *CategoryRepo) nameTaken(name string, except int64) bool {
	for id, c := range r.s.categories {
		if id != except && c.Name == name {
			return true
		}
	}
	return false
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(c.Name, 0) {
		return conflict("ya existe una categoría con ese nombre")
	}
	c.ID = r.s.nextID()
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *entity.Category) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return notFound("categoría", c.ID)
	}
	if r.nameTaken(c.Name, c.ID) {
		return conflict("ya existe una categoría con ese nombre")
	}
	r.s.categories[c.ID] = *c
	return nil
}

// Delete falla con ErrInvalidInput si algún producto la referencia.
func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return notFound("categoría", id)
	}
	for _, p := range r.s.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			return errMissingRef
		}
	}
	delete(r.s.categories, id)
	return nil
}

// SupplierRepo proveedores en memoria.
type SupplierRepo struct{ s *Store }

// Suppliers devuelve el repositorio de proveedores.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{s: s} }

func (r *SupplierRepo) nameTaken(name string, except int64) bool {
	for id, sp := range r.s.suppliers {
		if id != except && sp.Name == name {
			return true
		}
	}
	return false
}

func (r *SupplierRepo) Create(_ context.Context, sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(sp.Name, 0) {
		return conflict("ya existe un proveedor con ese nombre")
	}
	sp.ID = r.s.nextID()
	stored := *sp
	stored.Contact = clonePtr(sp.Contact)
	r.s.suppliers[sp.ID] = stored
	return nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sp, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	sp.Contact = clonePtr(sp.Contact)
	return &sp, nil
}

func (r *SupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, sp := range r.s.suppliers {
		sp.Contact = clonePtr(sp.Contact)
		out = append(out, &sp)
	}
	slices.SortFunc(out, func(a, b *entity.Supplier) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

func (r *SupplierRepo) Update(_ context.Context, sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[sp.ID]; !ok {
		return notFound("proveedor", sp.ID)
	}
	if r.nameTaken(sp.Name, sp.ID) {
		return conflict("ya existe un proveedor con ese nombre")
	}
	stored := *sp
	stored.Contact = clonePtr(sp.Contact)
	r.s.suppliers[sp.ID] = stored
	return nil
}

func (r *SupplierRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[id]; !ok {
		return notFound("proveedor", id)
	}
	for _, p := range r.s.products {
		if p.SupplierID != nil && *p.SupplierID == id {
			return errMissingRef
		}
	}
	delete(r.s.suppliers, id)
	return nil
}

// ProductRepo productos en memoria; las lecturas resuelven categoría y proveedor.
type ProductRepo struct{ s *Store }

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// check valida barcode único, referencias y rangos. Candado de escritura tomado.
func (r *ProductRepo) check(p *entity.Product) error {
	for id, other := range r.s.products {
		if id != p.ID && other.Barcode == p.Barcode {
			return conflict("ya existe un producto con ese código de barras")
		}
	}
	if p.CategoryID != nil {
		if _, ok := r.s.categories[*p.CategoryID]; !ok {
			return errMissingRef
		}
	}
	if p.SupplierID != nil {
		if _, ok := r.s.suppliers[*p.SupplierID]; !ok {
			return errMissingRef
		}
	}
	if p.CostPrice.IsNegative() || p.SalePrice.IsNegative() || p.Stock < 0 ||
		(p.SpecialPrice != nil && p.SpecialPrice.IsNegative()) {
		return errOutOfRange
	}
	return nil
}

func (r *ProductRepo) store(p *entity.Product) {
	stored := *p
	stored.SpecialPrice = clonePtr(p.SpecialPrice)
	stored.CategoryID = clonePtr(p.CategoryID)
	stored.SupplierID = clonePtr(p.SupplierID)
	stored.Category, stored.Supplier = nil, nil
	r.s.products[p.ID] = stored
}

// hydrate copia el producto y llena los joins. Candado de lectura tomado.
func (r *ProductRepo) hydrate(p entity.Product) *entity.Product {
	p.SpecialPrice = clonePtr(p.SpecialPrice)
	p.CategoryID = clonePtr(p.CategoryID)
	p.SupplierID = clonePtr(p.SupplierID)
	if p.CategoryID != nil {
		if c, ok := r.s.categories[*p.CategoryID]; ok {
			p.Category = &c
		}
	}
	if p.SupplierID != nil {
		if sp, ok := r.s.suppliers[*p.SupplierID]; ok {
			sp.Contact = clonePtr(sp.Contact)
			p.Supplier = &sp
		}
	}
	return &p
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(p); err != nil {
		return err
	}
	p.ID = r.s.nextID()
	r.store(p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return r.hydrate(p), nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, r.hydrate(p))
	}
	slices.SortFunc(out, func(a, b *entity.Product) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return notFound("producto", p.ID)
	}
	if err := r.check(p); err != nil {
		return err
	}
	r.store(p)
	return nil
}

// Delete falla con ErrInvalidInput si alguna línea de ticket lo referencia.
func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return notFound("producto", id)
	}
	for _, it := range r.s.items {
		if it.ProductID == id {
			return errMissingRef
		}
	}
	delete(r.s.products, id)
	return nil
}
