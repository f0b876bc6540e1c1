package handler

import (
	"net/http"
	"strings"

	"shopde/internal/model"
	"shopde/internal/render"
	"shopde/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler serves the storefront read pipeline: filtered product
// queries as JSON, plus rendered HTML fragments for the static pages.
type CatalogHandler struct {
	service  service.CatalogService
	renderer *render.Renderer
	logger   zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, renderer *render.Renderer, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		renderer: renderer,
		logger:   logger.With().Str("handler", "catalog").Logger(),
	}
}

// ListProducts handles GET /api/products with optional filter parameters
// (category, search, min, max).
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	filter := model.ParseProductFilter(r.URL.Query())

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeProductNotFound, "product ID is required", h.logger)
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// ProductGrid handles GET /fragments/products. It renders the filtered
// product cards, or the empty state when nothing matches.
func (h *CatalogHandler) ProductGrid(w http.ResponseWriter, r *http.Request) {
	filter := model.ParseProductFilter(r.URL.Query())

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if len(products) == 0 {
		html, err := h.renderer.Empty("")
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeHTML(w, http.StatusOK, html)
		return
	}

	html, err := h.renderer.ProductCards(products)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeHTML(w, http.StatusOK, html)
}

// Skeletons handles GET /fragments/skeletons, the loading placeholders the
// page shows while the grid request is in flight.
func (h *CatalogHandler) Skeletons(w http.ResponseWriter, r *http.Request) {
	html, err := h.renderer.Skeletons()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeHTML(w, http.StatusOK, html)
}

// CategoryChips handles GET /fragments/categories?active=<name>.
func (h *CatalogHandler) CategoryChips(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	html, err := h.renderer.CategoryChips(categories, r.URL.Query().Get("active"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeHTML(w, http.StatusOK, html)
}
