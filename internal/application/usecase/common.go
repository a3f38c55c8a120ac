package usecase

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/sales"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

// Clock fuente de la hora actual; en tests se fija.
type Clock func() time.Time

// normalizeText deja nombres y códigos en NFC y sin espacios al borde, para que la unicidad
// no dependa de cómo el cliente compuso los acentos.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := normalizeText(*s)
	return &v
}

// validate corre las reglas del DTO y las traduce a ErrInvalidInput.
func validate(v *validation.Validator, in any) error {
	if err := v.Struct(in); err != nil {
		return &domain.Error{Kind: domain.ErrInvalidInput, Msg: "datos inválidos: " + err.Error(), Cause: err}
	}
	return nil
}

// persistError deja pasar conflictos y entradas inválidas ya tipadas; cualquier otra falla al escribir
// se reporta como validación genérica con la causa solo para logs.
func persistError(msg string, err error) error {
	if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return domain.Invalid(msg, err)
}

// parseInstant interpreta una fecha opcional del cliente; nil devuelve now.
func parseInstant(s *string, loc *time.Location, now time.Time) (time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return now, nil
	}
	t, err := sales.ParseDate(*s, loc)
	if err != nil {
		return time.Time{}, domain.Invalidf("%s", err.Error())
	}
	return t, nil
}

// DayFilter resuelve el filtro opcional ?date= a una ventana de día.
func DayFilter(date string, loc *time.Location) (*sales.DayRange, error) {
	if strings.TrimSpace(date) == "" {
		return nil, nil
	}
	t, err := sales.ParseDate(date, loc)
	if err != nil {
		return nil, domain.Invalidf("%s", err.Error())
	}
	d := sales.DayOf(t, loc)
	return &d, nil
}
