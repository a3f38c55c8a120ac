package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/MRMRMR033/pos-api/docs"
	"github.com/MRMRMR033/pos-api/internal/application/auth"
	"github.com/MRMRMR033/pos-api/internal/application/receipt"
	"github.com/MRMRMR033/pos-api/internal/application/usecase"
	"github.com/MRMRMR033/pos-api/internal/domain/access"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/internal/infrastructure/memory"
	infrapdf "github.com/MRMRMR033/pos-api/internal/infrastructure/pdf"
	"github.com/MRMRMR033/pos-api/internal/infrastructure/postgres"
	infraredis "github.com/MRMRMR033/pos-api/internal/infrastructure/redis"
	httpRouter "github.com/MRMRMR033/pos-api/internal/interfaces/http"
	"github.com/MRMRMR033/pos-api/pkg/config"
	"github.com/MRMRMR033/pos-api/pkg/logger"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

// repositories puertos de persistencia, respaldados por Postgres o por el store en memoria.
type repositories struct {
	users         repository.UserRepository
	categories    repository.CategoryRepository
	suppliers     repository.SupplierRepository
	products      repository.ProductRepository
	tickets       repository.TicketRepository
	ticketItems   repository.TicketItemRepository
	cashMovements repository.CashMovementRepository
	sessionEvents repository.SessionEventRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("zona horaria inválida")
	}

	ctx := context.Background()

	var repos repositories
	if cfg.App.InMemory() {
		log.Warn().Msg("APP_STORAGE=memory: los datos se pierden al reiniciar")
		store := memory.New()
		repos = repositories{
			users:         store.Users(),
			categories:    store.Categories(),
			suppliers:     store.Suppliers(),
			products:      store.Products(),
			tickets:       store.Tickets(),
			ticketItems:   store.TicketItems(),
			cashMovements: store.CashMovements(),
			sessionEvents: store.SessionEvents(),
		}
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		repos = repositories{
			users:         postgres.NewUserRepository(pool),
			categories:    postgres.NewCategoryRepository(pool),
			suppliers:     postgres.NewSupplierRepository(pool),
			products:      postgres.NewProductRepository(pool),
			tickets:       postgres.NewTicketRepository(pool),
			ticketItems:   postgres.NewTicketItemRepository(pool),
			cashMovements: postgres.NewCashMovementRepository(pool),
			sessionEvents: postgres.NewSessionEventRepository(pool),
		}
	}

	// Revocación de tokens en logout; sin REDIS_ADDR el logout no invalida el JWT.
	var revoker auth.TokenRevoker = infraredis.Noop{}
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer rdb.Close()
		revoker = infraredis.NewTokenStore(rdb)
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: logout sin revocación de tokens")
	}

	v := validation.New()
	hasher := access.NewHasher(cfg.App.BcryptCost)

	sessionUC := usecase.NewSessionEventUseCase(repos.sessionEvents, v, loc)
	authUC := auth.NewAuthUseCase(repos.users, sessionUC, revoker, hasher, v, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	// PDF: comprobante del ticket
	receiptUC := receipt.NewUseCase(
		repos.tickets, repos.ticketItems, repos.products, repos.users,
		infrapdf.NewReceiptGenerator(), cfg.App.StoreName,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      usecase.NewProductUseCase(repos.products, v),
		CategoryUC:     usecase.NewCategoryUseCase(repos.categories, v),
		SupplierUC:     usecase.NewSupplierUseCase(repos.suppliers, v),
		UserUC:         usecase.NewUserUseCase(repos.users, hasher, v),
		TicketUC:       usecase.NewTicketUseCase(repos.tickets, v, loc),
		TicketItemUC:   usecase.NewTicketItemUseCase(repos.ticketItems, repos.tickets, repos.products, v),
		CashMovementUC: usecase.NewCashMovementUseCase(repos.cashMovements, v, loc),
		SessionEventUC: sessionUC,
		ReceiptUC:      receiptUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
