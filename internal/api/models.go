package api

import (
	"time"

	"github.com/keepsakelabs/keepsake-api/internal/domain"
)

// MemoryResponse represents the response data for a memory in list views.
// The photo payload is deliberately omitted; collections can hold many
// megabyte-scale photos and list endpoints return metadata only.
type MemoryResponse struct {
	ID          string    `json:"id"`
	CapturedAt  time.Time `json:"captured_at"`
	DisplayDate string    `json:"display_date"`
	FilterID    string    `json:"filter_id"`
	Notes       string    `json:"notes"`
}

// MemoryDetailResponse is the full representation of a single memory,
// including its photo payload.
type MemoryDetailResponse struct {
	MemoryResponse
	Photo string `json:"photo"`
}

// DayGroupResponse is one calendar day's worth of memories.
type DayGroupResponse struct {
	Date     string           `json:"date"`
	Memories []MemoryResponse `json:"memories"`
}

// StatsResponse summarizes the collection.
type StatsResponse struct {
	TotalMemories int        `json:"total_memories"`
	TotalDays     int        `json:"total_days"`
	FirstCaptured *time.Time `json:"first_captured,omitempty"`
	LastCaptured  *time.Time `json:"last_captured,omitempty"`
}

// CaptionResponse carries generated share caption text.
type CaptionResponse struct {
	Caption string `json:"caption"`
}

// TemplateResponse represents one export template in the catalog.
type TemplateResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
}

// FilterResponse represents one capture filter in the catalog.
type FilterResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Style string `json:"style"`
}

// memoryToResponse converts a domain.Memory to its list representation.
func memoryToResponse(m *domain.Memory) MemoryResponse {
	return MemoryResponse{
		ID:          m.ID.String(),
		CapturedAt:  m.CapturedAt,
		DisplayDate: domain.DisplayDate(m.CapturedAt),
		FilterID:    m.FilterID,
		Notes:       m.Notes,
	}
}

// memoryToDetailResponse converts a domain.Memory to its full
// representation. The photo payload is carried as the text it was captured
// with, typically a data URL.
func memoryToDetailResponse(m *domain.Memory) MemoryDetailResponse {
	return MemoryDetailResponse{
		MemoryResponse: memoryToResponse(m),
		Photo:          string(m.PhotoData),
	}
}

// memoriesToResponses converts a slice of memories, preserving order.
func memoriesToResponses(memories []*domain.Memory) []MemoryResponse {
	responses := make([]MemoryResponse, 0, len(memories))
	for _, m := range memories {
		responses = append(responses, memoryToResponse(m))
	}
	return responses
}

// templateToResponse converts a domain.Template catalog entry.
func templateToResponse(t domain.Template) TemplateResponse {
	return TemplateResponse{
		ID:              t.ID,
		Name:            t.Name,
		BackgroundColor: t.Background,
		TextColor:       t.Text,
	}
}

// filterToResponse converts a domain.Filter catalog entry.
func filterToResponse(f domain.Filter) FilterResponse {
	return FilterResponse{
		ID:    f.ID,
		Name:  f.Name,
		Style: f.Style,
	}
}
