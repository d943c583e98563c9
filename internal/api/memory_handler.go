package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/keepsakelabs/keepsake-api/internal/api/shared"
	"github.com/keepsakelabs/keepsake-api/internal/domain"
	"github.com/keepsakelabs/keepsake-api/internal/platform/logger"
	"github.com/keepsakelabs/keepsake-api/internal/service"
)

// CreateMemoryRequest represents the request body for capturing a memory.
// Photo carries the encoded image, either raw base64 or a full data URL.
type CreateMemoryRequest struct {
	Photo  string `json:"photo" validate:"required,min=1"`
	Filter string `json:"filter"`
	Notes  string `json:"notes"`
}

// UpdateNotesRequest represents the request body for editing a memory's notes.
// An empty string is a valid value; it clears the notes.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// MemoryHandler handles memory collection HTTP requests
type MemoryHandler struct {
	memoryService service.MemoryService
	logger        *slog.Logger
}

// NewMemoryHandler creates a new MemoryHandler
func NewMemoryHandler(memoryService service.MemoryService, logger *slog.Logger) *MemoryHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for MemoryHandler")
	}

	return &MemoryHandler{
		memoryService: memoryService,
		logger:        logger.With(slog.String("component", "memory_handler")),
	}
}

// CreateMemory handles POST /api/memories requests
func (h *MemoryHandler) CreateMemory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateMemoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// An omitted filter means the photo was captured unfiltered
	filterID := req.Filter
	if filterID == "" {
		filterID = domain.FilterNone
	}

	memory, err := h.memoryService.Create(r.Context(), []byte(req.Photo), filterID, req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("memory captured",
		slog.String("memory_id", memory.ID.String()),
		slog.String("filter_id", memory.FilterID))
	shared.RespondWithJSON(w, r, http.StatusCreated, memoryToDetailResponse(memory))
}

// ListMemories handles GET /api/memories requests. An optional q query
// parameter narrows the collection by display date or notes text.
func (h *MemoryHandler) ListMemories(w http.ResponseWriter, r *http.Request) {
	memories, err := h.memoryService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, memoriesToResponses(memories))
}

// GroupedMemories handles GET /api/memories/grouped requests. Memories are
// bucketed by calendar day, newest day first.
func (h *MemoryHandler) GroupedMemories(w http.ResponseWriter, r *http.Request) {
	memories, err := h.memoryService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	groups := service.GroupByDay(memories)
	response := make([]DayGroupResponse, 0, len(groups))
	for _, day := range service.SortedDayKeys(groups) {
		response = append(response, DayGroupResponse{
			Date:     day,
			Memories: memoriesToResponses(groups[day]),
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Stats handles GET /api/memories/stats requests
func (h *MemoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	memories, err := h.memoryService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	stats := StatsResponse{
		TotalMemories: len(memories),
		TotalDays:     len(service.GroupByDay(memories)),
	}

	var first, last time.Time
	for _, m := range memories {
		if first.IsZero() || m.CapturedAt.Before(first) {
			first = m.CapturedAt
		}
		if m.CapturedAt.After(last) {
			last = m.CapturedAt
		}
	}
	if !first.IsZero() {
		stats.FirstCaptured = &first
		stats.LastCaptured = &last
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// GetMemory handles GET /api/memories/{id} requests. Unlike the list
// endpoints this returns the photo payload.
func (h *MemoryHandler) GetMemory(w http.ResponseWriter, r *http.Request) {
	id, ok := memoryIDFromRequest(w, r)
	if !ok {
		return
	}

	memory, err := h.memoryService.Get(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, memoryToDetailResponse(memory))
}

// UpdateNotes handles PATCH /api/memories/{id}/notes requests
func (h *MemoryHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := memoryIDFromRequest(w, r)
	if !ok {
		return
	}

	var req UpdateNotesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	memory, err := h.memoryService.UpdateNotes(r.Context(), id, req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("memory notes updated", slog.String("memory_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, memoryToDetailResponse(memory))
}

// DeleteMemory handles DELETE /api/memories/{id} requests. Deletion is
// idempotent: removing an absent memory still returns 204.
func (h *MemoryHandler) DeleteMemory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := memoryIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.memoryService.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("memory deleted", slog.String("memory_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// memoryIDFromRequest extracts and parses the id URL parameter. On failure
// it writes a 400 response and reports false.
func memoryIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid memory ID")
		return uuid.Nil, false
	}
	return id, true
}
