package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartstock/stockops-api/internal/application/analytics"
	"github.com/smartstock/stockops-api/internal/application/auth"
	"github.com/smartstock/stockops-api/internal/application/chat"
	"github.com/smartstock/stockops-api/internal/application/insights"
	"github.com/smartstock/stockops-api/internal/application/transfer"
	"github.com/smartstock/stockops-api/internal/application/usecase"
	"github.com/smartstock/stockops-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC     *usecase.CatalogUseCase
	TransferUC    *transfer.UseCase
	DashboardUC   *analytics.DashboardUseCase
	InsightsUC    *insights.UseCase
	ChatUC        *chat.UseCase
	MarketplaceUC *usecase.MarketplaceUseCase
	AuthUC        *auth.UseCase
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Contrato de transferencia (público por contrato, sin auth)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/warehouses", catalogHandler.ListWarehouses)
	api.Get("/products/:warehouseId", catalogHandler.ListProducts)

	transferHandler := NewTransferHandler(deps.TransferUC)
	api.Post("/transfer", transferHandler.Transfer)

	travelHandler := NewTravelHandler(deps.InsightsUC)
	api.Post("/travel-time", travelHandler.TravelTime)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.InsightsUC)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/metrics/:warehouseId", dashboardHandler.Metrics)
	dashboard.Get("/insights/:warehouseId", dashboardHandler.Insights)

	// Chat y notificaciones (protegido)
	chatHandler := NewChatHandler(deps.ChatUC, deps.Log)
	chats := protected.Group("/chats")
	chats.Post("/", chatHandler.StartChat)
	chats.Get("/", chatHandler.ListChats)
	chats.Get("/:id/messages", chatHandler.ListMessages)
	chats.Post("/:id/messages", chatHandler.SendMessage)
	chats.Post("/:id/open", chatHandler.OpenChat)
	protected.Get("/notifications", chatHandler.Notifications)
	protected.Get("/notifications/stream", chatHandler.NotificationStream)

	// Marketplace (protegido)
	marketplaceHandler := NewMarketplaceHandler(deps.MarketplaceUC)
	marketplace := protected.Group("/marketplace")
	marketplace.Get("/", marketplaceHandler.List)
	marketplace.Post("/", marketplaceHandler.Create)
	marketplace.Post("/:id/contact", marketplaceHandler.ContactSeller)
}
