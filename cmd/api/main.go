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

	"github.com/bvanacker/bestelportaal-api/internal/application/auth"
	"github.com/bvanacker/bestelportaal-api/internal/application/usecase"
	"github.com/bvanacker/bestelportaal-api/internal/infrastructure/postgres"
	httpRouter "github.com/bvanacker/bestelportaal-api/internal/interfaces/http"
	"github.com/bvanacker/bestelportaal-api/internal/interfaces/ws"
	"github.com/bvanacker/bestelportaal-api/pkg/config"
	"github.com/bvanacker/bestelportaal-api/pkg/jwt"
	"github.com/bvanacker/bestelportaal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	jwtCfg := jwt.Config{
		Secret:   cfg.Auth.Secret,
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
		Expiry:   time.Duration(cfg.Auth.ExpHours) * time.Hour,
	}

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	reqRepo := postgres.NewUpdateRequestRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	lineRepo := postgres.NewOrderLineRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registry := ws.NewRegistry()
	relay := ws.NewRelay(registry, userRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, jwtCfg)
	userUC := usecase.NewUserUseCase(userRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	lineUC := usecase.NewOrderLineUseCase(lineRepo, orderRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, reqRepo, txRunner)
	notifUC := usecase.NewNotificationUseCase(notifRepo, orderRepo, userRepo, companyRepo, relay)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, orderRepo, notifUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI at /docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bestelportaal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		OrderUC:     orderUC,
		OrderLineUC: lineUC,
		PaymentUC:   paymentUC,
		CompanyUC:   companyUC,
		ProductUC:   productUC,
		NotifUC:     notifUC,
		JWT:         jwtCfg,
	})

	app.Get("/ws", ws.Upgrade, httpRouter.AuthMiddleware(jwtCfg), relay.Handler())

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
