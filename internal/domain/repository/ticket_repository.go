package repository

import (
	"context"
	"time"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
)

// TicketRepository define el puerto de persistencia para Ticket (DIP).
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id int64) (*entity.Ticket, error)
	// LastNumber devuelve el mayor número de ticket del usuario con fecha en [from, to), 0 si no hay.
	LastNumber(ctx context.Context, userID int64, from, to time.Time) (int, error)
	// List devuelve los tickets ordenados por fecha descendente.
	List(ctx context.Context) ([]*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	Delete(ctx context.Context, id int64) error
}

// TicketItemRepository define el puerto de persistencia para TicketItem (DIP).
type TicketItemRepository interface {
	Create(ctx context.Context, item *entity.TicketItem) error
	GetByID(ctx context.Context, id int64) (*entity.TicketItem, error)
	List(ctx context.Context) ([]*entity.TicketItem, error)
	ListByTicket(ctx context.Context, ticketID int64) ([]*entity.TicketItem, error)
	Update(ctx context.Context, item *entity.TicketItem) error
	Delete(ctx context.Context, id int64) error
}
