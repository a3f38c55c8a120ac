package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
)

var _ repository.TicketItemRepository = (*TicketItemRepo)(nil)

// TicketItemRepo implementación de TicketItemRepository sobre PostgreSQL.
type TicketItemRepo struct {
	q Querier
}

// NewTicketItemRepository construye el adaptador.
func NewTicketItemRepository(q Querier) *TicketItemRepo {
	return &TicketItemRepo{q: q}
}

const ticketItemSelect = `
	SELECT id, ticket_id, producto_id, cantidad, precio_unitario, total, created_at, updated_at
	FROM ticket_items`

// Create inserta la línea con su total ya calculado.
func (r *TicketItemRepo) Create(ctx context.Context, it *entity.TicketItem) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO ticket_items (ticket_id, producto_id, cantidad, precio_unitario, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		it.TicketID, it.ProductID, it.Quantity, it.UnitPrice, it.Total, it.CreatedAt, it.UpdatedAt,
	).Scan(&it.ID)
	if err != nil {
		return writeError("insert ticket_item", err)
	}
	return nil
}

// GetByID obtiene una línea; (nil, nil) si no existe.
func (r *TicketItemRepo) GetByID(ctx context.Context, id int64) (*entity.TicketItem, error) {
	it, err := scanTicketItem(r.q.QueryRow(ctx, ticketItemSelect+` WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket_item: %w", err)
	}
	return it, nil
}

// List devuelve todas las líneas.
func (r *TicketItemRepo) List(ctx context.Context) ([]*entity.TicketItem, error) {
	return r.list(ctx, ticketItemSelect+` ORDER BY ticket_id DESC, id`)
}

// ListByTicket devuelve las líneas de un ticket en orden de captura.
func (r *TicketItemRepo) ListByTicket(ctx context.Context, ticketID int64) ([]*entity.TicketItem, error) {
	return r.list(ctx, ticketItemSelect+` WHERE ticket_id = $1 ORDER BY id`, ticketID)
}

func (r *TicketItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.TicketItem, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ticket_items: %w", err)
	}
	defer rows.Close()
	var list []*entity.TicketItem
	for rows.Next() {
		it, err := scanTicketItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket_item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Update reescribe la línea, total incluido.
func (r *TicketItemRepo) Update(ctx context.Context, it *entity.TicketItem) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE ticket_items
		SET ticket_id = $2, producto_id = $3, cantidad = $4, precio_unitario = $5, total = $6, updated_at = $7
		WHERE id = $1`,
		it.ID, it.TicketID, it.ProductID, it.Quantity, it.UnitPrice, it.Total, it.UpdatedAt,
	)
	if err != nil {
		return writeError("update ticket_item", err)
	}
	return notFoundIfNone(tag, "línea de ticket", it.ID)
}

// Delete elimina la línea.
func (r *TicketItemRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ticket_items WHERE id = $1`, id)
	if err != nil {
		return writeError("delete ticket_item", err)
	}
	return notFoundIfNone(tag, "línea de ticket", id)
}

func scanTicketItem(row pgx.Row) (*entity.TicketItem, error) {
	var it entity.TicketItem
	err := row.Scan(&it.ID, &it.TicketID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Total, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
