package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Cuentas-api/docs"
	"github.com/jhoicas/Cuentas-api/internal/application/ports"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
	"github.com/jhoicas/Cuentas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Cuentas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Cuentas-api/internal/infrastructure/webhook"
	httpRouter "github.com/jhoicas/Cuentas-api/internal/interfaces/http"
	"github.com/jhoicas/Cuentas-api/pkg/config"
	"github.com/jhoicas/Cuentas-api/pkg/logger"
	"github.com/jhoicas/Cuentas-api/pkg/metrics"
	"github.com/swaggo/swag"
)

const swaggerFile = "./docs/swagger.json"

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
		Str("storage", cfg.DB.Driver).
		Bool("identity_verification", cfg.Identity.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Gateway de persistencia: se abre una vez y lo comparten todos los handlers.
	var (
		businessRepo repository.BusinessRepository
		accountRepo  repository.AccountRepository
		txRunner     ports.TxRunner
		pool         *pgxpool.Pool
	)
	switch cfg.DB.Driver {
	case config.StorageMemory:
		store := memory.New()
		businessRepo, accountRepo, txRunner = store.Businesses(), store.Accounts(), store
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		if cfg.DB.Migrate {
			if err := postgres.Migrate(cfg.DB); err != nil {
				log.Error().Err(err).Msg("migraciones")
			}
		}
		pool, err = postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("configuración de PostgreSQL")
		}
		defer pool.Close()
		businessRepo = postgres.NewBusinessRepository(pool)
		accountRepo = postgres.NewAccountRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	verifier := usecase.NewOwnershipVerifier(businessRepo)
	businessUC := usecase.NewBusinessUseCase(businessRepo, txRunner, verifier, cfg.DB.StatementTimeout)
	accountUC := usecase.NewAccountUseCase(accountRepo, txRunner, verifier, cfg.DB.StatementTimeout)

	var chatRelay ports.ChatRelay
	if cfg.Chat.WebhookURL != "" {
		chatRelay = webhook.NewChatClient(cfg.Chat.WebhookURL, cfg.Chat.Timeout)
	}
	chatUC := usecase.NewChatUseCase(chatRelay, verifier, cfg.Chat.Timeout, cfg.DB.StatementTimeout)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 40,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.AccessLog(log))
	app.Use(httpRouter.MetricsMiddleware())

	httpRouter.Router(app, httpRouter.RouterDeps{
		BusinessUC:     businessUC,
		AccountUC:      accountUC,
		ChatUC:         chatUC,
		Identity:       cfg.Identity,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		StrictStatus:   cfg.HTTP.StrictStatus,
		Log:            log,
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": false})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Cuentas API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("sin swagger.json; /docs deshabilitado")
	}

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
