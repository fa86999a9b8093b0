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

	"github.com/smartstock/stockops-api/internal/application/alerts"
	appanalytics "github.com/smartstock/stockops-api/internal/application/analytics"
	"github.com/smartstock/stockops-api/internal/application/auth"
	"github.com/smartstock/stockops-api/internal/application/chat"
	"github.com/smartstock/stockops-api/internal/application/insights"
	"github.com/smartstock/stockops-api/internal/application/transfer"
	"github.com/smartstock/stockops-api/internal/application/usecase"
	infraai "github.com/smartstock/stockops-api/internal/infrastructure/ai"
	"github.com/smartstock/stockops-api/internal/infrastructure/notify"
	"github.com/smartstock/stockops-api/internal/infrastructure/postgres"
	httpRouter "github.com/smartstock/stockops-api/internal/interfaces/http"
	"github.com/smartstock/stockops-api/pkg/config"
	"github.com/smartstock/stockops-api/pkg/logger"
)

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

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	rowRepo := postgres.NewProductRowRepository(pool)
	chatRepo := postgres.NewChatRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	listingRepo := postgres.NewListingRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := usecase.NewCatalogUseCase(warehouseRepo, rowRepo)
	transferUC := transfer.NewUseCase(txRunner, warehouseRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(warehouseRepo, rowRepo)

	gemini := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	insightsUC := insights.NewUseCase(warehouseRepo, rowRepo, gemini, gemini)

	hub := chat.NewHub()
	chatUC := chat.NewUseCase(chatRepo, notifRepo, hub)
	marketplaceUC := usecase.NewMarketplaceUseCase(listingRepo, chatUC)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Watcher de vencimientos y stock bajo hacia Telegram (opcional).
	if cfg.Alerts.Enabled {
		notifier := notify.NewTelegramNotifier(cfg.Alerts.TelegramBotToken, cfg.Alerts.TelegramChatID)
		watcher := alerts.NewWatcher(warehouseRepo, rowRepo, notifier, log.Component("alerts"))
		go watcher.Run(ctx, time.Duration(cfg.Alerts.IntervalMinutes)*time.Minute)
	}

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
		Title:    "StockOps API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:     catalogUC,
		TransferUC:    transferUC,
		DashboardUC:   dashboardUC,
		InsightsUC:    insightsUC,
		ChatUC:        chatUC,
		MarketplaceUC: marketplaceUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
