package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harlowgray/lexica-api/internal/catalog"
	"github.com/harlowgray/lexica-api/internal/config"
	"github.com/harlowgray/lexica-api/internal/service/auth"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	catalog      *catalog.Catalog
	tokenService auth.TokenService
}

// newApplication creates an application instance with all dependencies
// initialized. Configuration and logging must be established before
// this is called.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.catalog, err = catalog.Load(catalog.Options{
		PackDir:        cfg.Catalog.PackDir,
		StrictBackrefs: cfg.Catalog.StrictBackrefs,
		Logger:         logger.With("component", "catalog"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load descriptor catalog: %w", err)
	}

	logger.Info("Application initialized successfully",
		"catalog_version", app.catalog.Version,
		"nouns", app.catalog.Registry.Len())
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources. The
// catalog is in-memory and needs no teardown beyond logging.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
