package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MRMRMR033/pos-api/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// conflictMessages mensaje público por restricción única del esquema.
var conflictMessages = map[string]string{
	"productos_codigo_barras_key": "ya existe un producto con ese código de barras",
	"categorias_nombre_key":       "ya existe una categoría con ese nombre",
	"proveedores_nombre_key":      "ya existe un proveedor con ese nombre",
	"usuarios_email_key":          "el email ya está registrado",
	"ticket_por_usuario_y_dia":    "el número de ticket ya existe para ese usuario y día",
}

func pgCode(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// writeError traduce el error de un INSERT/UPDATE: únicos a ErrConflict, FK y CHECK a ErrInvalidInput.
// El detalle de Postgres queda en Cause, nunca en el mensaje público.
func writeError(op string, err error) error {
	pgErr, ok := pgCode(err)
	if !ok {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch pgErr.Code {
	case uniqueViolation:
		msg, found := conflictMessages[pgErr.ConstraintName]
		if !found {
			msg = "el registro ya existe"
		}
		return &domain.Error{Kind: domain.ErrConflict, Msg: msg, Cause: err}
	case foreignKeyViolation:
		return &domain.Error{Kind: domain.ErrInvalidInput, Msg: "referencia a un registro inexistente", Cause: err}
	case checkViolation:
		return &domain.Error{Kind: domain.ErrInvalidInput, Msg: "valor fuera de rango", Cause: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// noRows indica si el error es pgx.ErrNoRows (los repos devuelven (nil, nil) en ese caso).
func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// notFoundIfNone convierte un UPDATE/DELETE sin filas afectadas en ErrNotFound.
func notFoundIfNone(tag pgconn.CommandTag, what string, id int64) error {
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("%s %d no encontrado", what, id)
	}
	return nil
}
