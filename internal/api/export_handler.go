package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/keepsakelabs/keepsake-api/internal/api/shared"
	"github.com/keepsakelabs/keepsake-api/internal/platform/logger"
	"github.com/keepsakelabs/keepsake-api/internal/service"
)

// ExportMemoryRequest represents the request body for exporting a memory.
// Template defaults to the minimal scheme; Watermark defaults to on.
type ExportMemoryRequest struct {
	Template  string `json:"template"`
	Watermark *bool  `json:"watermark"`
}

// defaultTemplateID is used when an export request names no template.
const defaultTemplateID = "minimal"

// ExportHandler handles export and caption HTTP requests
type ExportHandler struct {
	exportService service.ExportService
	logger        *slog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService service.ExportService, logger *slog.Logger) *ExportHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ExportHandler")
	}

	return &ExportHandler{
		exportService: exportService,
		logger:        logger.With(slog.String("component", "export_handler")),
	}
}

// ExportMemory handles POST /api/memories/{id}/export requests. The
// response body is the rendered PNG, not JSON.
func (h *ExportHandler) ExportMemory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := memoryIDFromRequest(w, r)
	if !ok {
		return
	}

	// The body is optional; an empty body exports with defaults
	req := ExportMemoryRequest{}
	if r.ContentLength != 0 {
		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	templateID := req.Template
	if templateID == "" {
		templateID = defaultTemplateID
	}
	watermark := true
	if req.Watermark != nil {
		watermark = *req.Watermark
	}

	result, err := h.exportService.Export(r.Context(), id, templateID, watermark)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("memory export served",
		slog.String("memory_id", id.String()),
		slog.String("template_id", templateID),
		slog.Int("bytes", len(result.Data)))

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(result.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		log.Error("failed to write export payload", slog.String("error", err.Error()))
	}
}

// GetCaption handles GET /api/memories/{id}/caption requests
func (h *ExportHandler) GetCaption(w http.ResponseWriter, r *http.Request) {
	id, ok := memoryIDFromRequest(w, r)
	if !ok {
		return
	}

	caption, err := h.exportService.Caption(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CaptionResponse{Caption: caption})
}
