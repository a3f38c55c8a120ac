package repository

import (
	"context"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/sales"
)

// SessionEventRepository define el puerto de persistencia para SessionEvent (DIP).
// Los listados van ordenados por timestamp descendente.
type SessionEventRepository interface {
	Create(ctx context.Context, event *entity.SessionEvent) error
	GetByID(ctx context.Context, id int64) (*entity.SessionEvent, error)
	List(ctx context.Context) ([]*entity.SessionEvent, error)
	ListByUser(ctx context.Context, userID int64, day *sales.DayRange) ([]*entity.SessionEvent, error)
	Update(ctx context.Context, event *entity.SessionEvent) error
	Delete(ctx context.Context, id int64) error
}
