package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/keepsakelabs/keepsake-api/internal/api"
	apiMiddleware "github.com/keepsakelabs/keepsake-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	memoryHandler := api.NewMemoryHandler(app.memoryService, app.logger)
	exportHandler := api.NewExportHandler(app.exportService, app.logger)
	catalogHandler := api.NewCatalogHandler()

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Memory collection endpoints
		r.Post("/memories", memoryHandler.CreateMemory)
		r.Get("/memories", memoryHandler.ListMemories)
		r.Get("/memories/grouped", memoryHandler.GroupedMemories)
		r.Get("/memories/stats", memoryHandler.Stats)
		r.Get("/memories/{id}", memoryHandler.GetMemory)
		r.Patch("/memories/{id}/notes", memoryHandler.UpdateNotes)
		r.Delete("/memories/{id}", memoryHandler.DeleteMemory)

		// Export endpoints
		r.Post("/memories/{id}/export", exportHandler.ExportMemory)
		r.Get("/memories/{id}/caption", exportHandler.GetCaption)

		// Catalog endpoints
		r.Get("/templates", catalogHandler.ListTemplates)
		r.Get("/filters", catalogHandler.ListFilters)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
