package domain

import (
	"time"

	"github.com/google/uuid"
)

// Memory represents one captured moment: an encoded photo with its capture
// metadata and the user's free-text notes. Everything except Notes is
// write-once; mutations go through WithNotes so the immutable fields can
// never drift.
type Memory struct {
	ID         uuid.UUID `json:"id"`
	PhotoData  []byte    `json:"photo_data"`
	CapturedAt time.Time `json:"captured_at"`
	FilterID   string    `json:"filter_id"`
	Notes      string    `json:"notes"`
}

// NewMemory creates a new Memory with the given photo payload, capture
// filter, and optional notes. It generates a time-ordered UUIDv7 for the
// memory ID and stamps the capture time with the current UTC time.
// Returns an error if validation fails.
func NewMemory(photoData []byte, filterID string, notes string) (*Memory, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	memory := &Memory{
		ID:         id,
		PhotoData:  photoData,
		CapturedAt: time.Now().UTC(),
		FilterID:   filterID,
		Notes:      notes,
	}

	if err := memory.Validate(); err != nil {
		return nil, err
	}

	return memory, nil
}

// Validate checks if the Memory has valid data.
// Returns an error if any field fails validation.
func (m *Memory) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMemoryID
	}

	if len(m.PhotoData) == 0 {
		return ErrEmptyPhotoData
	}

	if !isValidFilterID(m.FilterID) {
		return ErrUnknownFilter
	}

	return nil
}

// WithNotes returns a copy of the memory with Notes replaced.
// All other fields are carried over unchanged.
func (m *Memory) WithNotes(notes string) *Memory {
	updated := *m
	updated.Notes = notes
	return &updated
}

// DisplayDate formats a capture time the way it appears throughout the
// product: "January 2, 2006". Search matching, caption text, and the export
// renderer all share this one formatting path.
func DisplayDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// DayKey truncates a capture time to its calendar day as a stable,
// lexicographically sortable string ("2006-01-02"). Used to group memories
// for display.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
