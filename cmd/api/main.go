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
	"github.com/tu-usuario/concesionario-pro/internal/application/auth"
	"github.com/tu-usuario/concesionario-pro/internal/application/sales"
	"github.com/tu-usuario/concesionario-pro/internal/application/workshop"
	infrapdf "github.com/tu-usuario/concesionario-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/concesionario-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/concesionario-pro/internal/interfaces/http"
	"github.com/tu-usuario/concesionario-pro/pkg/config"
	"github.com/tu-usuario/concesionario-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// Nivel vacío: el logger lo deriva del entorno (debug en development)
	log := logger.New(logger.Config{Env: cfg.App.Env})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	repairRepo := postgres.NewRepairOrderRepository(pool)
	proposalRepo := postgres.NewProposalRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	repairUC := workshop.NewRepairUseCase(repairRepo)
	mechanicUC := workshop.NewMechanicUseCase(userRepo)
	catalogUC := workshop.NewCatalogUseCase(customerRepo, vehicleRepo, userRepo)
	customerUC := sales.NewCustomerUseCase(customerRepo)
	vehicleUC := sales.NewVehicleUseCase(vehicleRepo)
	proposalUC := sales.NewProposalUseCase(proposalRepo, txRunner)

	// PDF: recibo de venta para imprimir
	receiptGen := infrapdf.NewMarotoSaleReceipt()
	saleUC := sales.NewSaleUseCase(saleRepo, receiptGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Concesionario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		RepairUC:   repairUC,
		MechanicUC: mechanicUC,
		CatalogUC:  catalogUC,
		CustomerUC: customerUC,
		VehicleUC:  vehicleUC,
		ProposalUC: proposalUC,
		SaleUC:     saleUC,
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
