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
	"github.com/jpfarias/assistec-api/internal/application/auth"
	"github.com/jpfarias/assistec-api/internal/application/usecase"
	infrapdf "github.com/jpfarias/assistec-api/internal/infrastructure/pdf"
	"github.com/jpfarias/assistec-api/internal/infrastructure/postgres"
	httpRouter "github.com/jpfarias/assistec-api/internal/interfaces/http"
	"github.com/jpfarias/assistec-api/pkg/config"
	"github.com/jpfarias/assistec-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()

	if cfg.DB.AutoMigrate {
		if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migrações do banco")
		}
		log.Info().Msg("migrações aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	checklistRepo := postgres.NewChecklistRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo, clientRepo)
	orderUC := usecase.NewOrderUseCase(txRunner, orderRepo, userRepo, clientRepo, equipmentRepo)
	checklistUC := usecase.NewChecklistUseCase(txRunner, checklistRepo)

	// PDF: folha impressa da ordem de serviço
	sheet := infrapdf.NewMarotoOrderSheet()
	orderPDFUC := usecase.NewOrderPDFUseCase(orderRepo, userRepo, clientRepo, equipmentRepo, sheet)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AssisTec API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ClientUC:    clientUC,
		EquipmentUC: equipmentUC,
		OrderUC:     orderUC,
		OrderPDFUC:  orderPDFUC,
		ChecklistUC: checklistUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
