package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación de TicketRepository sobre PostgreSQL.
// La unicidad (usuario_id, dia, numero_ticket) la garantiza la restricción ticket_por_usuario_y_dia.
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador.
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

const ticketSelect = `SELECT id, usuario_id, numero_ticket, fecha, dia, created_at, updated_at FROM tickets`

// Create inserta el ticket. Una colisión de número devuelve ErrConflict.
func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO tickets (usuario_id, numero_ticket, fecha, dia, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		t.UserID, t.TicketNumber, t.Date, t.Day, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		return writeError("insert ticket", err)
	}
	return nil
}

// GetByID obtiene un ticket; (nil, nil) si no existe.
func (r *TicketRepo) GetByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	t, err := scanTicket(r.q.QueryRow(ctx, ticketSelect+` WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// LastNumber mayor número de ticket del usuario con fecha en [from, to); 0 si no hay ninguno.
func (r *TicketRepo) LastNumber(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	var last int
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(MAX(numero_ticket), 0)
		FROM tickets
		WHERE usuario_id = $1 AND fecha >= $2 AND fecha < $3`,
		userID, from, to,
	).Scan(&last)
	if err != nil {
		return 0, fmt.Errorf("ultimo numero de ticket: %w", err)
	}
	return last, nil
}

// List devuelve los tickets por fecha descendente.
func (r *TicketRepo) List(ctx context.Context) ([]*entity.Ticket, error) {
	rows, err := r.q.Query(ctx, ticketSelect+` ORDER BY fecha DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update reescribe usuario, número y fecha. La restricción única se verifica en la escritura.
func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE tickets SET usuario_id = $2, numero_ticket = $3, fecha = $4, dia = $5, updated_at = $6
		WHERE id = $1`,
		t.ID, t.UserID, t.TicketNumber, t.Date, t.Day, t.UpdatedAt,
	)
	if err != nil {
		return writeError("update ticket", err)
	}
	return notFoundIfNone(tag, "ticket", t.ID)
}

// Delete elimina el ticket; sus líneas se borran en cascada.
func (r *TicketRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return writeError("delete ticket", err)
	}
	return notFoundIfNone(tag, "ticket", id)
}

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var t entity.Ticket
	if err := row.Scan(&t.ID, &t.UserID, &t.TicketNumber, &t.Date, &t.Day, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
