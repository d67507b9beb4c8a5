package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/delivery-api/internal/application/auth"
	apporders "github.com/jhoicas/delivery-api/internal/application/orders"
	"github.com/jhoicas/delivery-api/internal/application/payments"
	"github.com/jhoicas/delivery-api/internal/application/usecase"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	StatsUC     *usecase.StatsUseCase
	CreateOrder *apporders.CreateOrderUseCase
	OrderStatus *apporders.UpdateStatusUseCase
	OrderQuery  *apporders.OrderQueryUseCase
	Receipt     *apporders.ReceiptUseCase
	PaymentUC   *payments.PaymentUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público: el storefront se navega sin sesión)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.ListAvailable)
	api.Get("/products/:id", productHandler.GetByID)

	// Vendedores para el selector del checkout (público)
	userHandler := NewUserHandler(deps.UserUC)
	api.Get("/sellers", userHandler.ListSellers)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Pedidos (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderStatus, deps.OrderQuery, deps.Receipt)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.ListMine)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Pagos (protegido)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	protected.Post("/payments/session", paymentHandler.CreateSession)

	// Vista de vendedor: todos los pedidos de la tienda
	seller := protected.Group("/seller", RequireRole(entity.RoleSeller, entity.RoleAdministrator))
	seller.Get("/orders", orderHandler.ListAll)

	// Administración (solo ADMINISTRATOR)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdministrator))
	admin.Get("/products", productHandler.ListAll)
	admin.Post("/products", productHandler.Create)
	admin.Patch("/products/:id", productHandler.Update)
	admin.Get("/orders", orderHandler.ListAll)
	admin.Get("/users", userHandler.List)
	admin.Patch("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)
	admin.Get("/sellers", userHandler.ListSellersWithOrderCount)

	statsHandler := NewStatsHandler(deps.StatsUC)
	admin.Get("/stats", statsHandler.AdminStats)
}
