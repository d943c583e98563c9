package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/keepsakelabs/keepsake-api/internal/composer"
	"github.com/keepsakelabs/keepsake-api/internal/domain"
)

// ExportResult is the outcome of one export: an encoded file payload ready
// for download. It exists only for the duration of the export request.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService turns a stored memory plus export options into a
// share-ready image file or caption text.
type ExportService interface {
	// Export composes and encodes the memory identified by memoryID using
	// the named template. Returns ErrMemoryNotFound or
	// domain.ErrTemplateNotFound for bad references, composer.ErrDecode
	// for a corrupt stored photo, and composer.ErrEncode for an encoding
	// failure. A failed export produces no payload and never modifies the
	// stored memory.
	Export(ctx context.Context, memoryID uuid.UUID, templateID string, watermark bool) (*ExportResult, error)

	// Caption generates the share caption text for the memory.
	// Returns ErrMemoryNotFound if the memory is absent.
	Caption(ctx context.Context, memoryID uuid.UUID) (string, error)
}

// exportServiceImpl implements ExportService over the memory service and
// the composition engine.
type exportServiceImpl struct {
	memories MemoryService
	renderer *composer.Composer
	logger   *slog.Logger
	now      func() time.Time
}

// NewExportService creates a new ExportService.
// It returns an error if any required dependency is nil.
func NewExportService(
	memories MemoryService,
	renderer *composer.Composer,
	logger *slog.Logger,
) (ExportService, error) {
	if memories == nil {
		return nil, &MemoryServiceError{
			Operation: "create_service",
			Message:   "memory service cannot be nil",
		}
	}
	if renderer == nil {
		return nil, &MemoryServiceError{
			Operation: "create_service",
			Message:   "composer cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &exportServiceImpl{
		memories: memories,
		renderer: renderer,
		logger:   logger.With("component", "export_service"),
		now:      time.Now,
	}, nil
}

// Export renders and encodes one memory.
func (s *exportServiceImpl) Export(
	ctx context.Context,
	memoryID uuid.UUID,
	templateID string,
	watermark bool,
) (*ExportResult, error) {
	memory, err := s.memories.Get(ctx, memoryID)
	if err != nil {
		return nil, err
	}

	template, err := domain.TemplateByID(templateID)
	if err != nil {
		s.logger.Warn("export requested with unknown template",
			"template_id", templateID,
			"memory_id", memoryID)
		return nil, err
	}

	canvas, err := s.renderer.Compose(ctx, memory, template, watermark)
	if err != nil {
		s.logger.Error("failed to compose memory",
			"error", err,
			"memory_id", memoryID,
			"template_id", templateID)
		return nil, err
	}

	data, err := composer.EncodePNG(canvas)
	if err != nil {
		s.logger.Error("failed to encode composed image",
			"error", err,
			"memory_id", memoryID)
		return nil, err
	}

	result := &ExportResult{
		Filename:    composer.ExportFilename(s.now()),
		ContentType: "image/png",
		Data:        data,
	}

	s.logger.Info("memory exported",
		"memory_id", memoryID,
		"template_id", templateID,
		"watermark", watermark,
		"bytes", len(data))
	return result, nil
}

// Caption generates the share caption for one memory.
func (s *exportServiceImpl) Caption(ctx context.Context, memoryID uuid.UUID) (string, error) {
	memory, err := s.memories.Get(ctx, memoryID)
	if err != nil {
		return "", err
	}
	return composer.Caption(memory), nil
}
