package sales

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout formato de fecha simple (YYYY-MM-DD) usado en filtros por día.
const DateLayout = "2006-01-02"

// DayRange ventana de un día calendario: [Start, End). End es el inicio del día siguiente,
// equivalente a [00:00:00.000, 23:59:59.999] con precisión de milisegundos.
type DayRange struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro del día.
func (d DayRange) Contains(t time.Time) bool {
	return !t.Before(d.Start) && t.Before(d.End)
}

// LastInstant devuelve 23:59:59.999 del día.
func (d DayRange) LastInstant() time.Time {
	return d.End.Add(-time.Millisecond)
}

// Date devuelve el día calendario (medianoche UTC con el mismo año/mes/día), útil para columnas DATE.
func (d DayRange) Date() time.Time {
	y, m, day := d.Start.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// DayOf calcula la ventana del día calendario de t en loc.
// Solo importa el día: la hora de t se descarta.
func DayOf(t time.Time, loc *time.Location) DayRange {
	if loc == nil {
		loc = time.Local
	}
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return DayRange{Start: start, End: start.AddDate(0, 0, 1)}
}

// ParseDate interpreta "YYYY-MM-DD" en loc o un timestamp RFC 3339 (convertido a loc).
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD o RFC 3339", s)
	}
	return t.In(loc), nil
}
