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

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	validate *validation.Validator
	now      Clock
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, v *validation.Validator) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, validate: v, now: time.Now}
}

// Create crea una categoría; nombre duplicado devuelve ErrConflict.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	name := normalizeText(in.Nombre)
	if name == "" {
		return nil, domain.Invalidf("nombre no puede estar vacío")
	}
	now := uc.now()
	category := &entity.Category{Name: name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, persistError("no se pudo crear la categoría", err)
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) (dto.ListResponse[dto.CategoryResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.CategoryResponse]{}, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return dto.NewList(items), nil
}

// Update renombra una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	category, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		category.Name = normalizeText(*in.Nombre)
		if category.Name == "" {
			return nil, domain.Invalidf("nombre no puede estar vacío")
		}
	}
	category.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, persistError("no se pudo actualizar la categoría", err)
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CategoryUseCase) find(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFoundf("categoría %d no encontrada", id)
	}
	return category, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Nombre: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}
