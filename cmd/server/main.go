package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/site"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio-server",
		Short:         "Portfolio backend: profile, photos and writings over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(config.Load())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(config.Load())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase(config.Load())
			if err != nil {
				return err
			}
			defer database.Close(db)
			slog.Info("migration completed")
			return nil
		},
	})

	return root
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

func serve(cfg *config.Config) error {
	if cfg.DBDriver != "sqlite" && cfg.DBPassword == "" && cfg.IsProduction() {
		return fmt.Errorf("DB_PASSWORD environment variable is required")
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}

	// Database log sink (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewJSONHandler(os.Stdout, os.Getenv("LOG_LEVEL")),
		dbLogHandler,
	)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	defaults, err := site.Load(cfg.SiteConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load site defaults: %w", err)
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Env,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	app := routes.NewApp(cfg, db, defaults)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	var runErr error
	select {
	case <-quit:
		slog.Info("shutting down server...")
	case err := <-listenErr:
		runErr = fmt.Errorf("server failed to start: %w", err)
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	logging.Setup()
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
	return runErr
}
