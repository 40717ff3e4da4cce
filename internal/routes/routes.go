package routes

import (
	"time"

	"github.com/gharkakaam/marketplace-backend/internal/config"
	"github.com/gharkakaam/marketplace-backend/internal/handlers"
	"github.com/gharkakaam/marketplace-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	categoryHandler *handlers.CategoryHandler,
	providerHandler *handlers.ProviderHandler,
	bookingHandler *handlers.BookingHandler,
	reviewHandler *handlers.ReviewHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth: public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Users
	users := api.Group("/users", middleware.JWTProtected(cfg))
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Post("/:id/verify", middleware.AdminRequired(db, cfg), userHandler.Verify)

	// Service catalog: public browse, authenticated mutation
	api.Get("/services/categories", categoryHandler.List)
	api.Post("/services/categories", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg), categoryHandler.Create)

	api.Get("/services/providers", providerHandler.Search)
	api.Get("/services/providers/:id", providerHandler.Get)
	api.Post("/services/providers", middleware.JWTProtected(cfg), providerHandler.Create)
	api.Put("/services/providers/:id", middleware.JWTProtected(cfg), providerHandler.Update)
	api.Post("/services/providers/:id/approve", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg), providerHandler.Approve)

	// Bookings: participants only
	bookings := api.Group("/bookings", middleware.JWTProtected(cfg))
	bookings.Get("/", bookingHandler.List)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/:id", bookingHandler.Get)
	bookings.Put("/:id/status", bookingHandler.UpdateStatus)

	// Reviews: public read per provider, author-only mutation
	api.Get("/reviews/provider/:id", reviewHandler.ListForProvider)
	api.Post("/reviews", middleware.JWTProtected(cfg), reviewHandler.Create)
	api.Put("/reviews/:id", middleware.JWTProtected(cfg), reviewHandler.Update)
	api.Delete("/reviews/:id", middleware.JWTProtected(cfg), reviewHandler.Delete)
}
