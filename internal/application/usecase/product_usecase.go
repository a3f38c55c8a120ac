package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo     repository.ProductRepository
	validate *validation.Validator
	now      Clock
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, v *validation.Validator) *ProductUseCase {
	return &ProductUseCase{repo: repo, validate: v, now: time.Now}
}

// Create crea un producto. Código de barras duplicado devuelve ErrConflict.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	now := uc.now()
	product := &entity.Product{
		Barcode:      normalizeText(in.CodigoBarras),
		Name:         normalizeText(in.Nombre),
		CostPrice:    in.PrecioCosto,
		SalePrice:    in.PrecioVenta,
		SpecialPrice: in.PrecioEspecial,
		Stock:        in.Stock,
		CategoryID:   in.CategoriaID,
		SupplierID:   in.ProveedorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if product.Barcode == "" || product.Name == "" {
		return nil, domain.Invalidf("codigoBarras y nombre no pueden estar vacíos")
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, persistError("no se pudo crear el producto", err)
	}
	return uc.reload(ctx, product)
}

// GetByID obtiene un producto con su categoría y proveedor.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) (dto.ListResponse[dto.ProductResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.ProductResponse]{}, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return dto.NewList(items), nil
}

// Update aplica solo los campos presentes en la petición.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	limpiar := map[string]bool{}
	for _, f := range in.Limpiar {
		limpiar[f] = true
	}
	if (limpiar[dto.FieldPrecioEspecial] && in.PrecioEspecial != nil) ||
		(limpiar[dto.FieldCategoriaID] && in.CategoriaID != nil) ||
		(limpiar[dto.FieldProveedorID] && in.ProveedorID != nil) {
		return nil, domain.Invalidf("un campo no puede asignarse y limpiarse en la misma petición")
	}
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CodigoBarras != nil {
		product.Barcode = normalizeText(*in.CodigoBarras)
	}
	if in.Nombre != nil {
		product.Name = normalizeText(*in.Nombre)
	}
	if in.PrecioCosto != nil {
		product.CostPrice = *in.PrecioCosto
	}
	if in.PrecioVenta != nil {
		product.SalePrice = *in.PrecioVenta
	}
	if in.PrecioEspecial != nil {
		product.SpecialPrice = in.PrecioEspecial
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.CategoriaID != nil {
		product.CategoryID = in.CategoriaID
	}
	if in.ProveedorID != nil {
		product.SupplierID = in.ProveedorID
	}
	if limpiar[dto.FieldPrecioEspecial] {
		product.SpecialPrice = nil
	}
	if limpiar[dto.FieldCategoriaID] {
		product.CategoryID, product.Category = nil, nil
	}
	if limpiar[dto.FieldProveedorID] {
		product.SupplierID, product.Supplier = nil, nil
	}
	if product.Barcode == "" || product.Name == "" {
		return nil, domain.Invalidf("codigoBarras y nombre no pueden estar vacíos")
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, persistError("no se pudo actualizar el producto", err)
	}
	return uc.reload(ctx, product)
}

// Delete elimina un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) find(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFoundf("producto %d no encontrado", id)
	}
	return product, nil
}

// reload vuelve a leer el producto para devolver categoría y proveedor resueltos.
func (uc *ProductUseCase) reload(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	fresh, err := uc.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("releer producto %d: %w", p.ID, err)
	}
	if fresh == nil {
		return nil, domain.NotFoundf("producto %d no encontrado", p.ID)
	}
	return toProductResponse(fresh), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:             p.ID,
		CodigoBarras:   p.Barcode,
		Nombre:         p.Name,
		PrecioCosto:    p.CostPrice,
		PrecioVenta:    p.SalePrice,
		PrecioEspecial: p.SpecialPrice,
		Stock:          p.Stock,
		CategoriaID:    p.CategoryID,
		ProveedorID:    p.SupplierID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Category != nil {
		out.Categoria = &dto.RefResponse{ID: p.Category.ID, Nombre: p.Category.Name}
	}
	if p.Supplier != nil {
		out.Proveedor = &dto.RefResponse{ID: p.Supplier.ID, Nombre: p.Supplier.Name}
	}
	return out
}
