package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyMemoryID is returned when a memory ID is missing.
	ErrEmptyMemoryID = errors.New("memory ID cannot be empty")

	// ErrEmptyPhotoData is returned when a memory has no photo payload.
	ErrEmptyPhotoData = errors.New("memory photo data cannot be empty")

	// ErrUnknownFilter is returned when a memory references a filter ID
	// that is not in the capture filter catalog.
	ErrUnknownFilter = errors.New("unknown capture filter")

	// ErrTemplateNotFound is returned when a template ID is not in the
	// export template catalog.
	ErrTemplateNotFound = errors.New("template not found")
)
