package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/internal/domain/sales"
)

var _ repository.CashMovementRepository = (*CashMovementRepo)(nil)

// CashMovementRepo implementación de CashMovementRepository sobre PostgreSQL.
type CashMovementRepo struct {
	q Querier
}

// NewCashMovementRepository construye el adaptador.
func NewCashMovementRepository(q Querier) *CashMovementRepo {
	return &CashMovementRepo{q: q}
}

const cashSelect = `SELECT id, usuario_id, tipo, monto, descripcion, created_at, updated_at FROM cash_movements`

// Create inserta el movimiento.
func (r *CashMovementRepo) Create(ctx context.Context, m *entity.CashMovement) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO cash_movements (usuario_id, tipo, monto, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		m.UserID, m.Type, m.Amount, m.Description, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return writeError("insert cash_movement", err)
	}
	return nil
}

// GetByID obtiene un movimiento; (nil, nil) si no existe.
func (r *CashMovementRepo) GetByID(ctx context.Context, id int64) (*entity.CashMovement, error) {
	m, err := scanCashMovement(r.q.QueryRow(ctx, cashSelect+` WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash_movement: %w", err)
	}
	return m, nil
}

// List devuelve todos los movimientos, el más reciente primero.
func (r *CashMovementRepo) List(ctx context.Context) ([]*entity.CashMovement, error) {
	return r.list(ctx, cashSelect+` ORDER BY created_at DESC, id DESC`)
}

// ListByUser movimientos del usuario, opcionalmente solo los del día indicado.
func (r *CashMovementRepo) ListByUser(ctx context.Context, userID int64, day *sales.DayRange) ([]*entity.CashMovement, error) {
	if day == nil {
		return r.list(ctx, cashSelect+` WHERE usuario_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	}
	return r.list(ctx, cashSelect+`
		WHERE usuario_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC, id DESC`, userID, day.Start, day.End)
}

func (r *CashMovementRepo) list(ctx context.Context, query string, args ...any) ([]*entity.CashMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cash_movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashMovement
	for rows.Next() {
		m, err := scanCashMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cash_movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update reescribe el movimiento.
func (r *CashMovementRepo) Update(ctx context.Context, m *entity.CashMovement) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE cash_movements SET usuario_id = $2, tipo = $3, monto = $4, descripcion = $5, updated_at = $6
		WHERE id = $1`,
		m.ID, m.UserID, m.Type, m.Amount, m.Description, m.UpdatedAt,
	)
	if err != nil {
		return writeError("update cash_movement", err)
	}
	return notFoundIfNone(tag, "movimiento de caja", m.ID)
}

// Delete elimina el movimiento.
func (r *CashMovementRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM cash_movements WHERE id = $1`, id)
	if err != nil {
		return writeError("delete cash_movement", err)
	}
	return notFoundIfNone(tag, "movimiento de caja", id)
}

func scanCashMovement(row pgx.Row) (*entity.CashMovement, error) {
	var m entity.CashMovement
	if err := row.Scan(&m.ID, &m.UserID, &m.Type, &m.Amount, &m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
