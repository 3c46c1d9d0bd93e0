package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Handlers groups the resource endpoints mounted by Setup.
type Handlers struct {
	Health   *handlers.HealthHandler
	Profile  *handlers.ProfileHandler
	Photos   *handlers.PhotoHandler
	Writings *handlers.WritingHandler
	Uploads  *handlers.UploadHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter, per IP
	if cfg.RateLimitPerMinute > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:               cfg.RateLimitPerMinute,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		}))
	}

	owner := middleware.OwnerOnly(cfg)

	api.Get("/health", h.Health.Check)

	// Profile
	api.Get("/profile", h.Profile.Get)
	api.Put("/profile", owner, h.Profile.Save)
	api.Post("/profile", owner, h.Profile.Create)
	api.Get("/profile/:userId", h.Profile.GetByID)
	api.Put("/profile/:userId", owner, h.Profile.UpdateByID)

	// Photos
	api.Get("/photos", h.Photos.List)
	api.Post("/photos", owner, h.Photos.Create)
	api.Delete("/photos", owner, h.Photos.DeleteByQuery)
	api.Get("/photos/:id", h.Photos.Get)
	api.Put("/photos/:id", owner, h.Photos.Update)
	api.Delete("/photos/:id", owner, h.Photos.Delete)

	// Writings
	api.Get("/writings", h.Writings.List)
	api.Post("/writings", owner, h.Writings.Create)
	api.Get("/writings/:id", h.Writings.Get)
	api.Get("/writings/:id/content", h.Writings.Content)
	api.Put("/writings/:id", owner, h.Writings.Update)
	api.Delete("/writings/:id", owner, h.Writings.Delete)

	// Inline text fallback for writing content
	api.Post("/uploads/text", owner, h.Uploads.InlineText)
}
