// Package main implements the entry point for the Lexica API server,
// which serves the noun descriptor catalog for the supported SaaS
// domains over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/harlowgray/lexica-api/internal/config"
	"github.com/harlowgray/lexica-api/internal/platform/logger"
)

func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Catalog.PackDir != "" {
		slog.Debug("Catalog configuration", "pack_dir", cfg.Catalog.PackDir)
	}
	if cfg.Auth.TokenSecret != "" {
		slog.Debug("Auth configuration", "token_secret_present", true)
	}

	return cfg, appLogger, nil
}
