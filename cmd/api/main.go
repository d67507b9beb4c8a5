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

	_ "github.com/jhoicas/delivery-api/docs"
	"github.com/jhoicas/delivery-api/internal/application/auth"
	apporders "github.com/jhoicas/delivery-api/internal/application/orders"
	"github.com/jhoicas/delivery-api/internal/application/payments"
	"github.com/jhoicas/delivery-api/internal/application/usecase"
	infrapayment "github.com/jhoicas/delivery-api/internal/infrastructure/payment"
	infrapdf "github.com/jhoicas/delivery-api/internal/infrastructure/pdf"
	"github.com/jhoicas/delivery-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/delivery-api/internal/interfaces/http"
	"github.com/jhoicas/delivery-api/pkg/config"
	"github.com/jhoicas/delivery-api/pkg/logger"
)

// @title           Delivery API
// @version         1.0
// @description     API del storefront de delivery: catálogo, pedidos, pagos y administración.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	createOrderUC := apporders.NewCreateOrderUseCase(txRunner, userRepo, productRepo)
	statusUC := apporders.NewUpdateStatusUseCase(orderRepo)
	queryUC := apporders.NewOrderQueryUseCase(orderRepo)

	// PDF: recibo descargable del pedido
	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := apporders.NewReceiptUseCase(orderRepo, userRepo, receiptGen)

	stripeProvider := infrapayment.NewStripeProvider(infrapayment.Config{
		SecretKey: cfg.Payment.SecretKey,
		Currency:  cfg.Payment.Currency,
		BaseURL:   cfg.App.BaseURL,
		Timeout:   time.Duration(cfg.Payment.TimeoutS) * time.Second,
	})
	paymentUC := payments.NewPaymentUseCase(orderRepo, stripeProvider)

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
		Title:    "Delivery API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		UserUC:      userUC,
		StatsUC:     statsUC,
		CreateOrder: createOrderUC,
		OrderStatus: statusUC,
		OrderQuery:  queryUC,
		Receipt:     receiptUC,
		PaymentUC:   paymentUC,
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

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
