package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/sales"
	"github.com/MRMRMR033/pos-api/internal/infrastructure/memory"
)

func TestStore_RestriccionesDeCatalogo(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	cat := &entity.Category{Name: "Bebidas"}
	require.NoError(t, s.Categories().Create(ctx, cat))
	assert.ErrorIs(t, s.Categories().Create(ctx, &entity.Category{Name: "Bebidas"}), domain.ErrConflict)

	p := &entity.Product{Barcode: "750", Name: "Agua", SalePrice: decimal.NewFromInt(10), CategoryID: &cat.ID}
	require.NoError(t, s.Products().Create(ctx, p))

	got, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Bebidas", got.Category.Name)

	dup := &entity.Product{Barcode: "750", Name: "Otra"}
	err = s.Products().Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "ya existe un producto con ese código de barras", domain.PublicMessage(err))

	missing := int64(999)
	assert.ErrorIs(t, s.Products().Create(ctx, &entity.Product{Barcode: "x", SupplierID: &missing}), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.Categories().Delete(ctx, cat.ID), domain.ErrInvalidInput, "categoría en uso")
	assert.ErrorIs(t, s.Categories().Delete(ctx, 12345), domain.ErrNotFound)

	none, err := s.Products().GetByID(ctx, 12345)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestStore_TicketsPorDiaYCascada(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	loc := time.UTC

	email := "ana@pos.mx"
	u := &entity.User{FullName: "Ana", Email: &email, Role: entity.RoleEmpleado}
	require.NoError(t, s.Users().Create(ctx, u))

	at := time.Date(2025, 6, 8, 10, 0, 0, 0, loc)
	day := sales.DayOf(at, loc)
	tk := &entity.Ticket{UserID: u.ID, TicketNumber: 1, Date: at, Day: day.Date()}
	require.NoError(t, s.Tickets().Create(ctx, tk))

	err := s.Tickets().Create(ctx, &entity.Ticket{UserID: u.ID, TicketNumber: 1, Date: at.Add(time.Hour), Day: day.Date()})
	assert.ErrorIs(t, err, domain.ErrConflict)

	next := sales.DayOf(at.AddDate(0, 0, 1), loc)
	require.NoError(t, s.Tickets().Create(ctx, &entity.Ticket{UserID: u.ID, TicketNumber: 1, Date: next.Start, Day: next.Date()}))

	last, err := s.Tickets().LastNumber(ctx, u.ID, day.Start, day.End)
	require.NoError(t, err)
	assert.Equal(t, 1, last)

	p := &entity.Product{Barcode: "1", Name: "Pan"}
	require.NoError(t, s.Products().Create(ctx, p))
	it := &entity.TicketItem{TicketID: tk.ID, ProductID: p.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(5), Total: decimal.NewFromInt(5)}
	require.NoError(t, s.TicketItems().Create(ctx, it))

	assert.ErrorIs(t, s.Products().Delete(ctx, p.ID), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.Users().Delete(ctx, u.ID), domain.ErrInvalidInput)

	require.NoError(t, s.Tickets().Delete(ctx, tk.ID))
	items, err := s.TicketItems().ListByTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_CajaOrdenadaYFiltrada(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	u := &entity.User{FullName: "Caja", Role: entity.RoleEmpleado}
	require.NoError(t, s.Users().Create(ctx, u))

	base := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	for _, ts := range []time.Time{base.Add(-time.Second), base, base.Add(20 * time.Hour)} {
		require.NoError(t, s.CashMovements().Create(ctx, &entity.CashMovement{UserID: u.ID, Type: entity.CashIn, Amount: decimal.NewFromInt(1), CreatedAt: ts}))
	}
	day := sales.DayOf(base, time.UTC)
	list, err := s.CashMovements().ListByUser(ctx, u.ID, &day)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))

	all, err := s.CashMovements().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	assert.ErrorIs(t, s.CashMovements().Create(ctx, &entity.CashMovement{UserID: u.ID, Type: "X"}), domain.ErrInvalidInput)
}
