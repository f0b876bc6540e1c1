package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopde/internal/auth"
	"shopde/internal/config"
	"shopde/internal/database"
	"shopde/internal/handler"
	"shopde/internal/media"
	"shopde/internal/render"
	"shopde/internal/repository"
	"shopde/internal/router"
	"shopde/internal/service"
	"shopde/internal/whatsapp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("site", cfg.Site.Name).Msg("starting catalog API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	categoryRepo := repository.NewCategoryRepository(pool, logger)

	// Initialize media uploader; Cloudinary is the default, S3 the
	// self-hosted alternative with a fallback when it cannot initialise.
	var uploader media.Uploader
	if cfg.Media.Backend == config.MediaBackendS3 {
		s3Uploader, err := media.NewS3Uploader(ctx,
			cfg.Media.S3.Bucket, cfg.Media.S3.Region,
			cfg.Media.S3.Prefix, cfg.Media.S3.BaseURL, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 uploader, falling back to Cloudinary")
			uploader = media.NewCloudinaryUploader(
				cfg.Media.Cloudinary.CloudName,
				cfg.Media.Cloudinary.UploadPreset,
				cfg.Media.Cloudinary.Folder, logger)
		} else {
			uploader = s3Uploader
		}
	} else {
		uploader = media.NewCloudinaryUploader(
			cfg.Media.Cloudinary.CloudName,
			cfg.Media.Cloudinary.UploadPreset,
			cfg.Media.Cloudinary.Folder, logger)
	}

	// Initialize WhatsApp link builder and fragment renderer
	links := whatsapp.NewBuilder(cfg.WhatsApp.Number, cfg.Site.Currency, cfg.Site.Origin)
	renderer, err := render.New(cfg.Site.Currency, cfg.Site.SkeletonCount, links)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	// Initialize session verification
	verifier := auth.NewVerifier(cfg.Auth.SessionSecret)

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, categoryRepo, logger)
	adminService := service.NewAdminService(productRepo, categoryRepo, logger)

	// Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler(catalogService, renderer, logger)
	adminHandler := handler.NewAdminHandler(adminService, uploader, renderer, logger)

	// Initialize router
	mux := router.New(catalogHandler, adminHandler, verifier, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
