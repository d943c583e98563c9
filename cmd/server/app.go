package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/keepsakelabs/keepsake-api/internal/composer"
	"github.com/keepsakelabs/keepsake-api/internal/config"
	"github.com/keepsakelabs/keepsake-api/internal/platform/postgres"
	"github.com/keepsakelabs/keepsake-api/internal/service"
	"github.com/keepsakelabs/keepsake-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	collectionStore store.CollectionStore

	// Service interfaces
	memoryService service.MemoryService
	exportService service.ExportService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.collectionStore = postgres.NewPostgresCollectionStore(db, logger)

	// Initialize composition engine
	renderer, err := composer.New(
		time.Duration(cfg.Export.DecodeTimeoutSeconds)*time.Second,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create composer: %w", err)
	}

	// Initialize memory service
	app.memoryService, err = service.NewMemoryService(app.collectionStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory service: %w", err)
	}

	// Initialize export service
	app.exportService, err = service.NewExportService(app.memoryService, renderer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create export service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
