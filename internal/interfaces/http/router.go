package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MRMRMR033/pos-api/internal/application/auth"
	"github.com/MRMRMR033/pos-api/internal/application/receipt"
	"github.com/MRMRMR033/pos-api/internal/application/usecase"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	SupplierUC     *usecase.SupplierUseCase
	UserUC         *usecase.UserUseCase
	TicketUC       *usecase.TicketUseCase
	TicketItemUC   *usecase.TicketItemUseCase
	CashMovementUC *usecase.CashMovementUseCase
	SessionEventUC *usecase.SessionEventUseCase
	ReceiptUC      *receipt.UseCase
}

// crud rutas estándar de un recurso.
type crud interface {
	Create(*fiber.Ctx) error
	GetByID(*fiber.Ctx) error
	List(*fiber.Ctx) error
	Update(*fiber.Ctx) error
	Delete(*fiber.Ctx) error
}

// mount registra el CRUD. create y write son los roles exigidos para crear y para modificar o borrar
// (vacío = cualquier autenticado); las lecturas solo requieren autenticación.
func mount(r fiber.Router, h crud, create, write []string) {
	r.Post("/", RequireRole(create...), h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
	r.Patch("/:id", RequireRole(write...), h.Update)
	r.Delete("/:id", RequireRole(write...), h.Delete)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := []string{entity.RoleAdmin}
	anyone := []string(nil)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	requireAuth := AuthMiddleware(deps.AuthUC)
	authGroup.Get("/perfil", requireAuth, authHandler.Profile)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)

	// Catálogo: lectura para cualquier usuario, escritura solo admin.
	mount(api.Group("/productos", requireAuth), NewProductHandler(deps.ProductUC), adminOnly, adminOnly)
	mount(api.Group("/categorias", requireAuth), NewCategoryHandler(deps.CategoryUC), adminOnly, adminOnly)
	mount(api.Group("/proveedores", requireAuth), NewSupplierHandler(deps.SupplierUC), adminOnly, adminOnly)

	// Usuarios: solo admin.
	mount(api.Group("/usuarios", requireAuth, RequireRole(entity.RoleAdmin)), NewUserHandler(deps.UserUC), anyone, anyone)

	// Ventas
	tickets := api.Group("/tickets", requireAuth)
	ticketHandler := NewTicketHandler(deps.TicketUC, deps.TicketItemUC, deps.ReceiptUC)
	tickets.Get("/:id/items", ticketHandler.Items)
	tickets.Get("/:id/receipt", ticketHandler.Receipt)
	mount(tickets, ticketHandler, anyone, adminOnly)

	mount(api.Group("/ticket-items", requireAuth), NewTicketItemHandler(deps.TicketItemUC), anyone, anyone)

	// Caja y sesiones: /usuario/:usuarioId va antes de /:id.
	cash := api.Group("/cash-movements", requireAuth)
	cashHandler := NewCashMovementHandler(deps.CashMovementUC)
	cash.Get("/usuario/:usuarioId", cashHandler.ListForUser)
	mount(cash, cashHandler, anyone, adminOnly)

	sessions := api.Group("/session-events", requireAuth)
	sessionHandler := NewSessionEventHandler(deps.SessionEventUC)
	sessions.Get("/usuario/:usuarioId", sessionHandler.ListForUser)
	mount(sessions, sessionHandler, anyone, adminOnly)
}
