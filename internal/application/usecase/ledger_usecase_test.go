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

func TestCashListForUser_FiltraPorDiaMasRecientePrimero(t *testing.T) {
	ctx := context.Background()
	repo := newMemCash()
	uc := usecase.NewCashMovementUseCase(repo, validation.New(), cot)
	user4 := access.Identity{UserID: 4, Role: entity.RoleEmpleado}

	at := func(ts time.Time) {
		uc.SetClock(func() time.Time { return ts })
		_, err := uc.Create(ctx, user4, dto.CreateCashMovementRequest{Tipo: entity.CashIn, Monto: dec("100.00")})
		require.NoError(t, err)
	}
	at(time.Date(2025, 6, 7, 23, 59, 59, 999_000_000, cot))
	at(time.Date(2025, 6, 8, 0, 0, 0, 0, cot))
	at(time.Date(2025, 6, 8, 12, 0, 0, 0, cot))
	at(time.Date(2025, 6, 8, 23, 59, 59, 999_000_000, cot))
	at(time.Date(2025, 6, 9, 0, 0, 0, 0, cot))

	// Otro usuario el mismo día.
	uc.SetClock(fixedNow)
	_, err := uc.Create(ctx, admin1, dto.CreateCashMovementRequest{Tipo: entity.CashOut, Monto: dec("5.00")})
	require.NoError(t, err)

	list, err := uc.ListForUser(ctx, 4, "2025-06-08")
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	for i, m := range list.Items {
		assert.Equal(t, int64(4), m.UsuarioID)
		assert.Equal(t, "2025-06-08", m.CreatedAt.In(cot).Format("2006-01-02"))
		if i > 0 {
			assert.True(t, list.Items[i-1].CreatedAt.After(m.CreatedAt))
		}
	}

	all, err := uc.ListForUser(ctx, 4, "")
	require.NoError(t, err)
	assert.Equal(t, 5, all.Total)

	_, err = uc.ListForUser(ctx, 4, "ayer")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCash_ValidaTipoYMonto(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCashMovementUseCase(newMemCash(), validation.New(), cot)

	_, err := uc.Create(ctx, empleado7, dto.CreateCashMovementRequest{Tipo: "ENTRADA", Monto: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, empleado7, dto.CreateCashMovementRequest{Tipo: entity.CashOut, Monto: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCash_CorreccionAdministrativa(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCashMovementUseCase(newMemCash(), validation.New(), cot)
	m, err := uc.Create(ctx, empleado7, dto.CreateCashMovementRequest{Tipo: entity.CashIn, Monto: dec("10"), Descripcion: strPtr("fondo")})
	require.NoError(t, err)

	tipo := entity.CashOut
	m, err = uc.Update(ctx, m.ID, dto.UpdateCashMovementRequest{Tipo: &tipo})
	require.NoError(t, err)
	assert.Equal(t, entity.CashOut, m.Tipo)
	assertMoney(t, "10", m.Monto)
	assert.Equal(t, "fondo", *m.Descripcion)

	require.NoError(t, uc.Delete(ctx, m.ID))
	_, err = uc.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionEvents_OrdenYFiltro(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewSessionEventUseCase(newMemSessions(), validation.New(), cot)

	_, err := uc.Create(ctx, empleado7, dto.CreateSessionEventRequest{Tipo: entity.SessionLogin, Timestamp: strPtr("2025-06-08T08:00:00-05:00")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, empleado7, dto.CreateSessionEventRequest{Tipo: entity.SessionLogout, Timestamp: strPtr("2025-06-08T17:00:00-05:00")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, empleado7, dto.CreateSessionEventRequest{Tipo: entity.SessionLogin, Timestamp: strPtr("2025-06-09T08:00:00-05:00")})
	require.NoError(t, err)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, all.Total)
	assert.Equal(t, 9, all.Items[0].Timestamp.In(cot).Day())

	day, err := uc.ListForUser(ctx, 7, "2025-06-08")
	require.NoError(t, err)
	require.Equal(t, 2, day.Total)
	assert.Equal(t, entity.SessionLogout, day.Items[0].Tipo)

	_, err = uc.Create(ctx, empleado7, dto.CreateSessionEventRequest{Tipo: "ENTRAR"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, empleado7, dto.CreateSessionEventRequest{Tipo: entity.SessionLogin, UsuarioID: i64Ptr(8)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
