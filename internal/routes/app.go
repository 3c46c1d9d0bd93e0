package routes

import (
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/site"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// NewApp builds the Fiber application on top of an open database handle.
// The caller keeps ownership of db.
func NewApp(cfg *config.Config, db *gorm.DB, defaults *site.Defaults) *fiber.App {
	repos := repository.New(db)

	profileService := services.NewProfileService(repos, defaults)
	photoService := services.NewPhotoService(repos)
	writingService := services.NewWritingService(repos)
	contentService := services.NewContentService(cfg.ContentAllowedHosts, cfg.ContentFetchTimeout, cfg.BodyLimitBytes)

	app := fiber.New(fiber.Config{
		AppName:      "portfolio-backend",
		// values handed to the async log sink must not alias request buffers
		Immutable:    true,
		BodyLimit:    cfg.BodyLimitBytes,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	Setup(app, cfg, Handlers{
		Health:   handlers.NewHealthHandler(db),
		Profile:  handlers.NewProfileHandler(profileService),
		Photos:   handlers.NewPhotoHandler(photoService),
		Writings: handlers.NewWritingHandler(writingService, contentService, !cfg.IsProduction()),
		Uploads:  handlers.NewUploadHandler(contentService),
	})
	return app
}
