package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/keepsakelabs/keepsake-api/internal/domain"
	"github.com/keepsakelabs/keepsake-api/internal/service"
)

// fakeMemoryService implements service.MemoryService with configurable
// behavior per method. Unconfigured methods report not found or empty.
type fakeMemoryService struct {
	listFn        func(ctx context.Context) ([]*domain.Memory, error)
	getFn         func(ctx context.Context, id uuid.UUID) (*domain.Memory, error)
	createFn      func(ctx context.Context, photoData []byte, filterID, notes string) (*domain.Memory, error)
	updateNotesFn func(ctx context.Context, id uuid.UUID, notes string) (*domain.Memory, error)
	deleteFn      func(ctx context.Context, id uuid.UUID) error
	searchFn      func(ctx context.Context, query string) ([]*domain.Memory, error)
}

func (f *fakeMemoryService) List(ctx context.Context) ([]*domain.Memory, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []*domain.Memory{}, nil
}

func (f *fakeMemoryService) Get(ctx context.Context, id uuid.UUID) (*domain.Memory, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, service.ErrMemoryNotFound
}

func (f *fakeMemoryService) Create(
	ctx context.Context,
	photoData []byte,
	filterID, notes string,
) (*domain.Memory, error) {
	if f.createFn != nil {
		return f.createFn(ctx, photoData, filterID, notes)
	}
	return domain.NewMemory(photoData, filterID, notes)
}

func (f *fakeMemoryService) UpdateNotes(
	ctx context.Context,
	id uuid.UUID,
	notes string,
) (*domain.Memory, error) {
	if f.updateNotesFn != nil {
		return f.updateNotesFn(ctx, id, notes)
	}
	return nil, service.ErrMemoryNotFound
}

func (f *fakeMemoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeMemoryService) Search(ctx context.Context, query string) ([]*domain.Memory, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, query)
	}
	return []*domain.Memory{}, nil
}

func (f *fakeMemoryService) Count(ctx context.Context) (int, error) {
	memories, err := f.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(memories), nil
}

// fakeExportService implements service.ExportService.
type fakeExportService struct {
	exportFn  func(ctx context.Context, memoryID uuid.UUID, templateID string, watermark bool) (*service.ExportResult, error)
	captionFn func(ctx context.Context, memoryID uuid.UUID) (string, error)
}

func (f *fakeExportService) Export(
	ctx context.Context,
	memoryID uuid.UUID,
	templateID string,
	watermark bool,
) (*service.ExportResult, error) {
	if f.exportFn != nil {
		return f.exportFn(ctx, memoryID, templateID, watermark)
	}
	return nil, service.ErrMemoryNotFound
}

func (f *fakeExportService) Caption(ctx context.Context, memoryID uuid.UUID) (string, error) {
	if f.captionFn != nil {
		return f.captionFn(ctx, memoryID)
	}
	return "", service.ErrMemoryNotFound
}

// newTestRouter wires the handlers into the same route layout the server
// uses so tests exercise real URL parameter extraction.
func newTestRouter(memories service.MemoryService, exports service.ExportService) http.Handler {
	memoryHandler := NewMemoryHandler(memories, slog.Default())
	catalogHandler := NewCatalogHandler()

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/memories", memoryHandler.CreateMemory)
		r.Get("/memories", memoryHandler.ListMemories)
		r.Get("/memories/grouped", memoryHandler.GroupedMemories)
		r.Get("/memories/stats", memoryHandler.Stats)
		r.Get("/memories/{id}", memoryHandler.GetMemory)
		r.Patch("/memories/{id}/notes", memoryHandler.UpdateNotes)
		r.Delete("/memories/{id}", memoryHandler.DeleteMemory)

		if exports != nil {
			exportHandler := NewExportHandler(exports, slog.Default())
			r.Post("/memories/{id}/export", exportHandler.ExportMemory)
			r.Get("/memories/{id}/caption", exportHandler.GetCaption)
		}

		r.Get("/templates", catalogHandler.ListTemplates)
		r.Get("/filters", catalogHandler.ListFilters)
	})
	return r
}
