package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/kwadjo-mensah/shopledger-backend/internal/config"
	"github.com/kwadjo-mensah/shopledger-backend/internal/handlers"
	"github.com/kwadjo-mensah/shopledger-backend/internal/middleware"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/kwadjo-mensah/shopledger-backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	subscriptionService *services.SubscriptionService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	webhookHandler *handlers.WebhookHandler,
	salesHandler *handlers.SalesHandler,
	debtHandler *handlers.DebtHandler,
	inventoryHandler *handlers.InventoryHandler,
	businessHandler *handlers.BusinessHandler,
	platformHandler *handlers.PlatformHandler,
	advisorHandler *handlers.AdvisorHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Webhooks — signature-verified, no JWT. Must see the raw body.
	api.Post("/webhooks/stripe", webhookHandler.HandleStripe)

	// Auth — public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)

	jwt := middleware.Protected(cfg)
	gated := middleware.SubscriptionRequired(subscriptionService)

	// Subscription surface (authenticated, never gated — an expired
	// tenant must still reach status and checkout to recover)
	api.Get("/subscription/status", jwt, subscriptionHandler.Status)
	api.Post("/subscription/checkout", jwt,
		middleware.RequireRoles(models.RoleOwner),
		subscriptionHandler.CreateCheckout)

	// Sales
	api.Post("/sales/quick", jwt, gated,
		middleware.RequireRoles(models.RoleOwner, models.RoleManager, models.RoleCashier),
		salesHandler.RecordQuickSale)
	api.Get("/sales", jwt,
		middleware.RequireRoles(models.RoleOwner, models.RoleManager),
		salesHandler.List)

	// Debts
	api.Get("/debts", jwt, debtHandler.List)
	api.Post("/debts/:id/payments", jwt, gated,
		middleware.RequireRoles(models.RoleOwner, models.RoleManager),
		debtHandler.RecordPayment)

	// Inventory
	api.Post("/inventory/supplier-order", jwt, gated,
		middleware.RequireRoles(models.RoleOwner, models.RoleManager),
		inventoryHandler.RecordSupplierOrder)
	api.Get("/inventory", jwt, inventoryHandler.List)

	// Business settings and staff (owner-only mutations)
	api.Get("/business", jwt, businessHandler.Get)
	api.Put("/business", jwt,
		middleware.RequireRoles(models.RoleOwner),
		businessHandler.Update)
	api.Delete("/business/account", jwt,
		middleware.RequireRoles(models.RoleOwner),
		businessHandler.DeleteAccount)

	api.Get("/users", jwt,
		middleware.RequireRoles(models.RoleOwner, models.RoleManager),
		authHandler.ListUsers)
	api.Post("/users", jwt,
		middleware.RequireRoles(models.RoleOwner),
		authHandler.CreateUser)
	api.Delete("/users/:id", jwt,
		middleware.RequireRoles(models.RoleOwner),
		authHandler.DeleteUser)

	// AI advisor
	api.Get("/ai/ask", jwt, gated, advisorHandler.Ask)

	// Platform operator surface (no tenant identity, no gate)
	platform := api.Group("/platform", jwt, middleware.PlatformAdminRequired())
	platform.Get("/stats", platformHandler.Stats)
	platform.Get("/businesses", platformHandler.ListBusinesses)
	platform.Get("/revenue", platformHandler.Revenue)
}
