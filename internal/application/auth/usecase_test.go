package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MRMRMR033/pos-api/internal/application/auth"
	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/access"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/pkg/logger"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

type fakeUsers struct {
	byID map[int64]*entity.User
	seq  int64
}

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	for _, o := range f.byID {
		if o.Email != nil && u.Email != nil && *o.Email == *u.Email {
			return domain.Conflictf("el email ya está registrado")
		}
	}
	f.seq++
	u.ID = f.seq
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) List(context.Context) ([]*entity.User, error) { return nil, nil }
func (f *fakeUsers) Update(context.Context, *entity.User) error   { return nil }
func (f *fakeUsers) Delete(context.Context, int64) error          { return nil }

type recordedEvent struct {
	userID int64
	kind   string
}

type fakeSessions struct {
	events []recordedEvent
	fail   bool
}

func (f *fakeSessions) Record(_ context.Context, userID int64, kind string, ts time.Time) (*dto.SessionEventResponse, error) {
	if f.fail {
		return nil, errors.New("db caída")
	}
	f.events = append(f.events, recordedEvent{userID, kind})
	return &dto.SessionEventResponse{UsuarioID: userID, Tipo: kind, Timestamp: ts}, nil
}

type fakeRevoker struct {
	ttl map[string]time.Duration
}

func (f *fakeRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	f.ttl[jti] = ttl
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := f.ttl[jti]
	return ok, nil
}

type fixture struct {
	uc       *auth.AuthUseCase
	users    *fakeUsers
	sessions *fakeSessions
	revoker  *fakeRevoker
}

func newFixture() fixture {
	f := fixture{
		users:    &fakeUsers{byID: map[int64]*entity.User{}},
		sessions: &fakeSessions{},
		revoker:  &fakeRevoker{ttl: map[string]time.Duration{}},
	}
	f.uc = auth.NewAuthUseCase(f.users, f.sessions, f.revoker, access.NewHasher(bcrypt.MinCost), validation.New(),
		auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "pos-api-test"}, logger.Nop())
	return f
}

func TestRegister_RolPorDefectoYConflicto(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	u, err := f.uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "Caja 1", Email: "Caja1@pos.mx", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmpleado, u.Rol)
	assert.Equal(t, "caja1@pos.mx", *u.Email)

	_, err = f.uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "Otra", Email: "caja1@pos.mx", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "X", Email: "no-es-email", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenYEventoLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	u, err := f.uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "Admin", Email: "admin@pos.mx", Password: "secreto", Role: "admin"})
	require.NoError(t, err)

	out, err := f.uc.Login(ctx, dto.LoginRequest{Email: "ADMIN@pos.mx", Password: "secreto"})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)
	assert.Equal(t, u.ID, out.Usuario.ID)
	assert.Equal(t, []recordedEvent{{u.ID, entity.SessionLogin}}, f.sessions.events)

	id, claims, err := f.uc.Authenticate(ctx, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, access.Identity{UserID: u.ID, Role: "admin"}, id)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "A", Email: "a@pos.mx", Password: "secreto"})
	require.NoError(t, err)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "a@pos.mx", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "nadie@pos.mx", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, f.sessions.events)
}

func TestLogin_FallaDelEventoNoImpideLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "A", Email: "a@pos.mx", Password: "secreto"})
	require.NoError(t, err)
	f.sessions.fail = true

	out, err := f.uc.Login(ctx, dto.LoginRequest{Email: "a@pos.mx", Password: "secreto"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestLogout_RevocaTokenYRegistraEvento(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "A", Email: "a@pos.mx", Password: "secreto"})
	require.NoError(t, err)
	out, err := f.uc.Login(ctx, dto.LoginRequest{Email: "a@pos.mx", Password: "secreto"})
	require.NoError(t, err)
	_, claims, err := f.uc.Authenticate(ctx, out.AccessToken)
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout(ctx, claims))

	ttl, ok := f.revoker.ttl[claims.ID]
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)
	assert.Equal(t, entity.SessionLogout, f.sessions.events[len(f.sessions.events)-1].kind)

	_, _, err = f.uc.Authenticate(ctx, out.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	u, err := f.uc.RegisterUser(ctx, dto.RegisterRequest{FullName: "A", Email: "a@pos.mx", Password: "secreto"})
	require.NoError(t, err)

	got, err := f.uc.Profile(ctx, access.Identity{UserID: u.ID, Role: u.Rol})
	require.NoError(t, err)
	assert.Equal(t, "A", got.FullName)

	_, err = f.uc.Profile(ctx, access.Identity{UserID: 99, Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
