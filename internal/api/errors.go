package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/keepsakelabs/keepsake-api/internal/composer"
	"github.com/keepsakelabs/keepsake-api/internal/domain"
	"github.com/keepsakelabs/keepsake-api/internal/service"
	"github.com/keepsakelabs/keepsake-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrMemoryNotFound),
		errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyPhotoData),
		errors.Is(err, domain.ErrUnknownFilter):
		return http.StatusBadRequest

	// A stored photo that cannot be decoded is a well-formed request for
	// an unprocessable payload
	case errors.Is(err, composer.ErrDecode):
		return http.StatusUnprocessableEntity

	// Storage backend unreachable
	case errors.Is(err, store.ErrStorageUnavailable):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrMemoryNotFound):
		return "Memory not found"

	case errors.Is(err, domain.ErrTemplateNotFound):
		return "Template not found"

	case errors.Is(err, domain.ErrEmptyPhotoData):
		return "Photo data is required"

	case errors.Is(err, domain.ErrUnknownFilter):
		return "Unknown capture filter"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid memory data"

	case errors.Is(err, composer.ErrDecode):
		return "Stored photo could not be decoded"

	case errors.Is(err, store.ErrStorageUnavailable):
		return "Storage temporarily unavailable"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'CreateMemoryRequest.Photo' Error:Field validation for 'Photo' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
