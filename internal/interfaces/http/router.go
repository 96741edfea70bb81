package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bvanacker/bestelportaal-api/internal/application/auth"
	"github.com/bvanacker/bestelportaal-api/internal/application/usecase"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/pkg/jwt"
)

// RouterDeps bundles the use cases for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	OrderUC     *usecase.OrderUseCase
	OrderLineUC *usecase.OrderLineUseCase
	PaymentUC   *usecase.PaymentUseCase
	CompanyUC   *usecase.CompanyUseCase
	ProductUC   *usecase.ProductUseCase
	NotifUC     *usecase.NotificationUseCase
	JWT         jwt.Config
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWT)

	// Users; login is public, profiles require a token.
	users := api.Group("/users")
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/login", authHandler.Login)
	users.Get("/:id", authRequired, userHandler.GetByID)
	users.Put("/:id", authRequired, userHandler.Update)

	// Product catalogue (public)
	products := api.Group("/producten")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)

	// Orders (protected)
	orders := api.Group("/bestellingen", authRequired)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)

	// Order lines (protected)
	lines := api.Group("/productenBestelling", authRequired)
	lineHandler := NewOrderLineHandler(deps.OrderLineUC)
	lines.Get("/", lineHandler.ListByOrder)

	// Payments (protected)
	payments := api.Group("/betalingen", authRequired)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/:id", paymentHandler.Create)

	// Companies (protected; applying an update request is admin only)
	companies := api.Group("/bedrijven", authRequired)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.GetOwn)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", companyHandler.RequestUpdate)
	companies.Put("/:id", RequireRole(entity.RoleAdmin), companyHandler.ApplyUpdate)

	// Notifications; the per-order reminder lookup is public.
	notifications := api.Group("/notificaties")
	notifHandler := NewNotificationHandler(deps.NotifUC)
	notifications.Get("/bestelling/:id", notifHandler.ByOrder)
	notifications.Get("/recent", authRequired, notifHandler.Recent)
	notifications.Get("/", authRequired, notifHandler.List)
	notifications.Get("/:id", authRequired, notifHandler.GetByID)
	notifications.Put("/:id", authRequired, notifHandler.SetStatus)
	notifications.Put("/", authRequired, notifHandler.MarkAllSeen)
	notifications.Post("/", authRequired, notifHandler.Create)
}
