package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/consigna-api/internal/application/audit"
	"github.com/jhoicas/consigna-api/internal/application/auth"
	"github.com/jhoicas/consigna-api/internal/application/inventory"
	"github.com/jhoicas/consigna-api/internal/application/partner"
	"github.com/jhoicas/consigna-api/internal/application/returns"
	"github.com/jhoicas/consigna-api/internal/application/sales"
	"github.com/jhoicas/consigna-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/consigna-api/internal/interfaces/http"
	"github.com/jhoicas/consigna-api/pkg/config"
	"github.com/jhoicas/consigna-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	supplierRepo := postgres.NewSupplierRepository(pool)
	batchRepo := postgres.NewIntakeBatchRepository(pool)
	itemRepo := postgres.NewStockItemRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	logRepo := postgres.NewActionLogRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	supplierUC := partner.NewSupplierUseCase(txRunner, supplierRepo, batchRepo)
	intakeUC := inventory.NewIntakeUseCase(txRunner, supplierRepo, batchRepo, itemRepo)
	stockUC := inventory.NewStockQueryUseCase(itemRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, itemRepo)
	returnUC := returns.NewReturnUseCase(txRunner, batchRepo, itemRepo)
	auditUC := audit.NewAuditUseCase(logRepo)
	authUC := auth.NewAuthUseCase(userRepo, logRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Consigna API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		SupplierUC: supplierUC,
		IntakeUC:   intakeUC,
		StockUC:    stockUC,
		SaleUC:     saleUC,
		ReturnUC:   returnUC,
		AuditUC:    auditUC,
		JWTSecret:  cfg.JWT.Secret,
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
