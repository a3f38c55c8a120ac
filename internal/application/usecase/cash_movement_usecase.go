package usecase

import (
	"context"
	"time"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/access"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

// CashMovementUseCase libro de entradas y salidas de efectivo.
type CashMovementUseCase struct {
	repo     repository.CashMovementRepository
	validate *validation.Validator
	loc      *time.Location
	now      Clock
}

// NewCashMovementUseCase construye el caso de uso. loc define el día calendario de los filtros.
func NewCashMovementUseCase(repo repository.CashMovementRepository, v *validation.Validator, loc *time.Location) *CashMovementUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &CashMovementUseCase{repo: repo, validate: v, loc: loc, now: time.Now}
}

// Create registra un movimiento a nombre del usuario autenticado (o de otro, si es admin).
func (uc *CashMovementUseCase) Create(ctx context.Context, id access.Identity, in dto.CreateCashMovementRequest) (*dto.CashMovementResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	userID, err := ownerFor(id, in.UsuarioID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	movement := &entity.CashMovement{
		UserID:      userID,
		Type:        in.Tipo,
		Amount:      in.Monto,
		Description: normalizeOptional(in.Descripcion),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, movement); err != nil {
		return nil, persistError("no se pudo registrar el movimiento", err)
	}
	return toCashMovementResponse(movement), nil
}

// GetByID obtiene un movimiento.
func (uc *CashMovementUseCase) GetByID(ctx context.Context, id int64) (*dto.CashMovementResponse, error) {
	movement, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCashMovementResponse(movement), nil
}

// List lista todos los movimientos, el más reciente primero.
func (uc *CashMovementUseCase) List(ctx context.Context) (dto.ListResponse[dto.CashMovementResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.CashMovementResponse]{}, err
	}
	return toCashMovementList(list), nil
}

// ListForUser lista los movimientos de un usuario; date (YYYY-MM-DD, opcional) restringe a ese día.
func (uc *CashMovementUseCase) ListForUser(ctx context.Context, userID int64, date string) (dto.ListResponse[dto.CashMovementResponse], error) {
	day, err := DayFilter(date, uc.loc)
	if err != nil {
		return dto.ListResponse[dto.CashMovementResponse]{}, err
	}
	list, err := uc.repo.ListByUser(ctx, userID, day)
	if err != nil {
		return dto.ListResponse[dto.CashMovementResponse]{}, err
	}
	return toCashMovementList(list), nil
}

// Update corrección administrativa de un movimiento.
func (uc *CashMovementUseCase) Update(ctx context.Context, id int64, in dto.UpdateCashMovementRequest) (*dto.CashMovementResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	movement, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UsuarioID != nil {
		movement.UserID = *in.UsuarioID
	}
	if in.Tipo != nil {
		movement.Type = *in.Tipo
	}
	if in.Monto != nil {
		movement.Amount = *in.Monto
	}
	if in.Descripcion != nil {
		movement.Description = normalizeOptional(in.Descripcion)
	}
	movement.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, movement); err != nil {
		return nil, persistError("no se pudo actualizar el movimiento", err)
	}
	return toCashMovementResponse(movement), nil
}

// Delete elimina un movimiento.
func (uc *CashMovementUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CashMovementUseCase) find(ctx context.Context, id int64) (*entity.CashMovement, error) {
	movement, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.NotFoundf("movimiento de caja %d no encontrado", id)
	}
	return movement, nil
}

func toCashMovementList(list []*entity.CashMovement) dto.ListResponse[dto.CashMovementResponse] {
	items := make([]dto.CashMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toCashMovementResponse(m))
	}
	return dto.NewList(items)
}

func toCashMovementResponse(m *entity.CashMovement) *dto.CashMovementResponse {
	return &dto.CashMovementResponse{
		ID:          m.ID,
		UsuarioID:   m.UserID,
		Tipo:        m.Type,
		Monto:       m.Amount,
		Descripcion: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
