package repository

import (
	"context"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/sales"
)

// CashMovementRepository define el puerto de persistencia para CashMovement (DIP).
// Los listados van del más reciente al más antiguo.
type CashMovementRepository interface {
	Create(ctx context.Context, movement *entity.CashMovement) error
	GetByID(ctx context.Context, id int64) (*entity.CashMovement, error)
	List(ctx context.Context) ([]*entity.CashMovement, error)
	// ListByUser filtra por usuario y, si day != nil, por ese día calendario.
	ListByUser(ctx context.Context, userID int64, day *sales.DayRange) ([]*entity.CashMovement, error)
	Update(ctx context.Context, movement *entity.CashMovement) error
	Delete(ctx context.Context, id int64) error
}
