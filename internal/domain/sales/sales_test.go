package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRMRMR033/pos-api/internal/domain/sales"
)

func TestDayOf_VentanaCompleta(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	ts := time.Date(2025, 6, 8, 15, 30, 12, 0, loc)

	day := sales.DayOf(ts, loc)

	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, loc), day.Start)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, loc), day.End)
	assert.Equal(t, time.Date(2025, 6, 8, 23, 59, 59, 999_000_000, loc), day.LastInstant())
	assert.True(t, day.Contains(day.Start))
	assert.True(t, day.Contains(day.LastInstant()))
	assert.False(t, day.Contains(day.End))
	assert.Equal(t, "2025-06-08", day.Date().Format(sales.DateLayout))
}

func TestDayOf_ConvierteAZonaConfigurada(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	// 02:00 UTC del 9 de junio son las 21:00 del 8 en COT.
	ts := time.Date(2025, 6, 9, 2, 0, 0, 0, time.UTC)

	day := sales.DayOf(ts, loc)
	assert.Equal(t, "2025-06-08", day.Start.Format(sales.DateLayout))
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)

	d, err := sales.ParseDate("2025-06-08", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, loc), d)

	ts, err := sales.ParseDate("2025-06-08T12:34:56.789Z", loc)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-08", sales.DayOf(ts, loc).Date().Format(sales.DateLayout))

	_, err = sales.ParseDate("08/06/2025", loc)
	assert.Error(t, err)
}

func TestNextTicketNumber(t *testing.T) {
	assert.Equal(t, 1, sales.NextTicketNumber(0))
	assert.Equal(t, 2, sales.NextTicketNumber(1))
	assert.Equal(t, 10, sales.NextTicketNumber(9))
}

func TestLineTotal(t *testing.T) {
	total := sales.LineTotal(2, decimal.RequireFromString("15.00"))
	assert.True(t, total.Equal(decimal.RequireFromString("30.00")), "got %s", total)
}

func TestRecomputeLine_UsaValoresActualesParaCamposAusentes(t *testing.T) {
	price := decimal.RequireFromString("15.00")

	three := 3
	qty, p, total, changed := sales.RecomputeLine(2, price, &three, nil)
	require.True(t, changed)
	assert.Equal(t, 3, qty)
	assert.True(t, p.Equal(price))
	assert.True(t, total.Equal(decimal.RequireFromString("45")))

	newPrice := decimal.RequireFromString("20.00")
	qty, p, total, changed = sales.RecomputeLine(qty, p, nil, &newPrice)
	require.True(t, changed)
	assert.Equal(t, 3, qty)
	assert.True(t, p.Equal(newPrice))
	assert.True(t, total.Equal(decimal.RequireFromString("60")))

	_, _, _, changed = sales.RecomputeLine(qty, p, nil, nil)
	assert.False(t, changed)
}
