package usecase

import (
	"context"
	"time"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	validate *validation.Validator
	now      Clock
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, v *validation.Validator) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, validate: v, now: time.Now}
}

// Create crea un proveedor; nombre duplicado devuelve ErrConflict.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	name := normalizeText(in.Nombre)
	if name == "" {
		return nil, domain.Invalidf("nombre no puede estar vacío")
	}
	now := uc.now()
	supplier := &entity.Supplier{
		Name:      name,
		Contact:   normalizeOptional(in.Contacto),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, persistError("no se pudo crear el proveedor", err)
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context) (dto.ListResponse[dto.SupplierResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.SupplierResponse]{}, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return dto.NewList(items), nil
}

// Update aplica los campos presentes.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	supplier, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		supplier.Name = normalizeText(*in.Nombre)
		if supplier.Name == "" {
			return nil, domain.Invalidf("nombre no puede estar vacío")
		}
	}
	if in.Contacto != nil {
		supplier.Contact = normalizeOptional(in.Contacto)
	}
	supplier.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, persistError("no se pudo actualizar el proveedor", err)
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *SupplierUseCase) find(ctx context.Context, id int64) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NotFoundf("proveedor %d no encontrado", id)
	}
	return supplier, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Nombre:    s.Name,
		Contacto:  s.Contact,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
