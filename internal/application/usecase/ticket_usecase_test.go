package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/application/usecase"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/access"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

var cot = time.FixedZone("COT", -5*3600)

func fixedNow() time.Time { return time.Date(2025, 6, 8, 15, 0, 0, 0, cot) }

func newTicketUC(repo *memTickets) *usecase.TicketUseCase {
	uc := usecase.NewTicketUseCase(repo, validation.New(), cot)
	uc.SetClock(fixedNow)
	return uc
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func i64Ptr(i int64) *int64   { return &i }

var (
	empleado7 = access.Identity{UserID: 7, Role: entity.RoleEmpleado}
	admin1    = access.Identity{UserID: 1, Role: entity.RoleAdmin}
)

func TestTicketCreate_NumeracionPorUsuarioYDia(t *testing.T) {
	ctx := context.Background()
	uc := newTicketUC(newMemTickets())

	first, err := uc.Create(ctx, empleado7, dto.CreateTicketRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.NumeroTicket)
	assert.Equal(t, int64(7), first.UsuarioID)

	second, err := uc.Create(ctx, empleado7, dto.CreateTicketRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, second.NumeroTicket)

	yesterday, err := uc.Create(ctx, empleado7, dto.CreateTicketRequest{Fecha: strPtr("2025-06-07")})
	require.NoError(t, err)
	assert.Equal(t, 1, yesterday.NumeroTicket, "la secuencia reinicia por día calendario")
}

func TestTicketCreate_SecuenciaSinHuecos(t *testing.T) {
	ctx := context.Background()
	uc := newTicketUC(newMemTickets())

	for want := 1; want <= 25; want++ {
		got, err := uc.Create(ctx, empleado7, dto.CreateTicketRequest{})
		require.NoError(t, err)
		require.Equal(t, want, got.NumeroTicket)
	}
}

func TestTicketCreate_UsuariosIndependientes(t *testing.T) {
	ctx := context.Background()
	uc := newTicketUC(newMemTickets())

	_, err := uc.Create(ctx, empleado7, dto.CreateTicketRequest{})
	require.NoError(t, err)
	other, err := uc.Create(ctx, access.Identity{UserID: 8, Role: entity.RoleEmpleado}, dto.CreateTicketRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, other.NumeroTicket)
}

func TestTicketCreate_SoloImportaElDiaDelTimestamp(t *testing.T) {
	ctx := context.Background()
	uc := newTicketUC(newMemTickets())

	a, err := uc.Create(ctx, empleado7, dto.CreateTicketRequest{Fecha: strPtr("2025-06-08T08:15:00-05:00")})
	require.NoError(t, err)
	// 03:00 UTC del 9 son las 22:00 del 8 en COT: mismo día.
	b, err := uc.Create(ctx, empleado7, dto.CreateTicketRequest{Fecha: strPtr("2025-06-09T03:00:00Z")})
	require.NoError(t, err)

	assert.Equal(t, 1, a.NumeroTicket)
	assert.Equal(t, 2, b.NumeroTicket)
	assert.Equal(t, 22, b.Fecha.In(cot).Hour(), "la fecha guardada conserva la hora completa")
}

func TestTicketCreate_CarreraDevuelveConflictoConNumero(t *testing.T) {
	ctx := context.Background()
	repo := newMemTickets()
	uc := newTicketUC(repo)

	_, err := uc.Create(ctx, empleado7, dto.CreateTicketRequest{})
	require.NoError(t, err)

	// Otra petición leyó "último = 0" antes de que se guardara el ticket 1.
	repo.staleLast = 1
	_, err = uc.Create(ctx, empleado7, dto.CreateTicketRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, domain.PublicMessage(err), "número 1")
	assert.Len(t, repo.rows, 1)
}

func TestTicketCreate_EmpleadoNoEmiteParaOtro(t *testing.T) {
	uc := newTicketUC(newMemTickets())

	_, err := uc.Create(context.Background(), empleado7, dto.CreateTicketRequest{UsuarioID: i64Ptr(9)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTicketCreate_AdminEmiteParaOtro(t *testing.T) {
	uc := newTicketUC(newMemTickets())

	got, err := uc.Create(context.Background(), admin1, dto.CreateTicketRequest{UsuarioID: i64Ptr(9)})
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.UsuarioID)
	assert.Equal(t, 1, got.NumeroTicket)
}

func TestTicketCreate_FechaInvalida(t *testing.T) {
	uc := newTicketUC(newMemTickets())

	_, err := uc.Create(context.Background(), empleado7, dto.CreateTicketRequest{Fecha: strPtr("08/06/2025")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTicketUpdate_NumeroRepetidoEsConflicto(t *testing.T) {
	ctx := context.Background()
	uc := newTicketUC(newMemTickets())
	_, err := uc.Create(ctx, empleado7, dto.CreateTicketRequest{})
	require.NoError(t, err)
	second, err := uc.Create(ctx, empleado7, dto.CreateTicketRequest{})
	require.NoError(t, err)

	_, err = uc.Update(ctx, second.ID, dto.UpdateTicketRequest{NumeroTicket: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, domain.PublicMessage(err), "número 1")

	moved, err := uc.Update(ctx, second.ID, dto.UpdateTicketRequest{Fecha: strPtr("2025-06-01")})
	require.NoError(t, err)
	assert.Equal(t, 2, moved.NumeroTicket)
}

func TestTicket_NoEncontrado(t *testing.T) {
	ctx := context.Background()
	repo := newMemTickets()
	uc := newTicketUC(repo)

	_, err := uc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Update(ctx, 99, dto.UpdateTicketRequest{NumeroTicket: intPtr(3)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, 99), domain.ErrNotFound)
	assert.Empty(t, repo.rows)
}

func TestTicketList_MasRecientePrimero(t *testing.T) {
	ctx := context.Background()
	uc := newTicketUC(newMemTickets())
	_, err := uc.Create(ctx, empleado7, dto.CreateTicketRequest{Fecha: strPtr("2025-06-01")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, empleado7, dto.CreateTicketRequest{Fecha: strPtr("2025-06-05")})
	require.NoError(t, err)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.True(t, list.Items[0].Fecha.After(list.Items[1].Fecha))
}
