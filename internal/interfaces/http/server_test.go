package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MRMRMR033/pos-api/internal/application/auth"
	"github.com/MRMRMR033/pos-api/internal/application/receipt"
	"github.com/MRMRMR033/pos-api/internal/application/usecase"
	"github.com/MRMRMR033/pos-api/internal/domain/access"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/infrastructure/memory"
	"github.com/MRMRMR033/pos-api/internal/infrastructure/pdf"
	infraredis "github.com/MRMRMR033/pos-api/internal/infrastructure/redis"
	apphttp "github.com/MRMRMR033/pos-api/internal/interfaces/http"
	pkgjwt "github.com/MRMRMR033/pos-api/pkg/jwt"
	"github.com/MRMRMR033/pos-api/pkg/logger"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "pos-api-test"
	testExpMin    = 60
)

// testServer app completa sobre el store en memoria y Redis simulado.
type testServer struct {
	app    *fiber.App
	store  *memory.Store
	hasher access.Hasher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	loc := time.UTC
	store := memory.New()
	v := validation.New()
	hasher := access.NewHasher(bcrypt.MinCost)
	log := logger.Nop()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	sessionUC := usecase.NewSessionEventUseCase(store.SessionEvents(), v, loc)
	authUC := auth.NewAuthUseCase(store.Users(), sessionUC, infraredis.NewTokenStore(rdb), hasher, v,
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, log)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      usecase.NewProductUseCase(store.Products(), v),
		CategoryUC:     usecase.NewCategoryUseCase(store.Categories(), v),
		SupplierUC:     usecase.NewSupplierUseCase(store.Suppliers(), v),
		UserUC:         usecase.NewUserUseCase(store.Users(), hasher, v),
		TicketUC:       usecase.NewTicketUseCase(store.Tickets(), v, loc),
		TicketItemUC:   usecase.NewTicketItemUseCase(store.TicketItems(), store.Tickets(), store.Products(), v),
		CashMovementUC: usecase.NewCashMovementUseCase(store.CashMovements(), v, loc),
		SessionEventUC: sessionUC,
		ReceiptUC: receipt.NewUseCase(store.Tickets(), store.TicketItems(), store.Products(), store.Users(),
			pdf.NewReceiptGenerator(), "Tienda de prueba"),
	})
	return &testServer{app: app, store: store, hasher: hasher}
}

// seedUser crea un usuario directamente en el store y devuelve su header Authorization.
func (s *testServer) seedUser(t *testing.T, name, role string) (int64, string) {
	t.Helper()
	hash, err := s.hasher.Hash("secreto123")
	require.NoError(t, err)
	email := name + "@pos.test"
	u := &entity.User{FullName: name, Email: &email, PasswordHash: hash, Role: role}
	require.NoError(t, s.store.Users().Create(t.Context(), u))
	return u.ID, bearer(t, u.ID, role)
}

func bearer(t *testing.T, userID int64, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// do lanza la petición; body se serializa a JSON si no es nil.
func (s *testServer) do(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
