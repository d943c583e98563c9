package api

import (
	"net/http"

	"github.com/keepsakelabs/keepsake-api/internal/api/shared"
	"github.com/keepsakelabs/keepsake-api/internal/domain"
)

// CatalogHandler serves the fixed template and filter catalogs.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListTemplates handles GET /api/templates requests
func (h *CatalogHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates := domain.Templates()
	response := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		response = append(response, templateToResponse(t))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// ListFilters handles GET /api/filters requests
func (h *CatalogHandler) ListFilters(w http.ResponseWriter, r *http.Request) {
	filters := domain.Filters()
	response := make([]FilterResponse, 0, len(filters))
	for _, f := range filters {
		response = append(response, filterToResponse(f))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
