package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/internal/domain/sales"
)

var _ repository.SessionEventRepository = (*SessionEventRepo)(nil)

// SessionEventRepo implementación de SessionEventRepository sobre PostgreSQL.
type SessionEventRepo struct {
	q Querier
}

// NewSessionEventRepository construye el adaptador.
func NewSessionEventRepository(q Querier) *SessionEventRepo {
	return &SessionEventRepo{q: q}
}

const sessionSelect = `SELECT id, usuario_id, tipo, "timestamp" FROM session_events`

// Create inserta el evento.
func (r *SessionEventRepo) Create(ctx context.Context, e *entity.SessionEvent) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO session_events (usuario_id, tipo, "timestamp") VALUES ($1, $2, $3) RETURNING id`,
		e.UserID, e.Type, e.Timestamp,
	).Scan(&e.ID)
	if err != nil {
		return writeError("insert session_event", err)
	}
	return nil
}

// GetByID obtiene un evento; (nil, nil) si no existe.
func (r *SessionEventRepo) GetByID(ctx context.Context, id int64) (*entity.SessionEvent, error) {
	e, err := scanSessionEvent(r.q.QueryRow(ctx, sessionSelect+` WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session_event: %w", err)
	}
	return e, nil
}

// List devuelve todos los eventos por timestamp descendente.
func (r *SessionEventRepo) List(ctx context.Context) ([]*entity.SessionEvent, error) {
	return r.list(ctx, sessionSelect+` ORDER BY "timestamp" DESC, id DESC`)
}

// ListByUser eventos del usuario, opcionalmente solo los del día indicado.
func (r *SessionEventRepo) ListByUser(ctx context.Context, userID int64, day *sales.DayRange) ([]*entity.SessionEvent, error) {
	if day == nil {
		return r.list(ctx, sessionSelect+` WHERE usuario_id = $1 ORDER BY "timestamp" DESC, id DESC`, userID)
	}
	return r.list(ctx, sessionSelect+`
		WHERE usuario_id = $1 AND "timestamp" >= $2 AND "timestamp" < $3
		ORDER BY "timestamp" DESC, id DESC`, userID, day.Start, day.End)
}

func (r *SessionEventRepo) list(ctx context.Context, query string, args ...any) ([]*entity.SessionEvent, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list session_events: %w", err)
	}
	defer rows.Close()
	var list []*entity.SessionEvent
	for rows.Next() {
		e, err := scanSessionEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session_event: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update reescribe el evento.
func (r *SessionEventRepo) Update(ctx context.Context, e *entity.SessionEvent) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE session_events SET usuario_id = $2, tipo = $3, "timestamp" = $4 WHERE id = $1`,
		e.ID, e.UserID, e.Type, e.Timestamp,
	)
	if err != nil {
		return writeError("update session_event", err)
	}
	return notFoundIfNone(tag, "evento de sesión", e.ID)
}

// Delete elimina el evento.
func (r *SessionEventRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM session_events WHERE id = $1`, id)
	if err != nil {
		return writeError("delete session_event", err)
	}
	return notFoundIfNone(tag, "evento de sesión", id)
}

func scanSessionEvent(row pgx.Row) (*entity.SessionEvent, error) {
	var e entity.SessionEvent
	if err := row.Scan(&e.ID, &e.UserID, &e.Type, &e.Timestamp); err != nil {
		return nil, err
	}
	return &e, nil
}
