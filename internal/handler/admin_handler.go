package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"shopde/internal/media"
	"shopde/internal/model"
	"shopde/internal/render"
	"shopde/internal/search"
	"shopde/internal/service"

	"github.com/rs/zerolog"
)

// maxUploadBytes caps the multipart memory for image uploads (10 MiB).
const maxUploadBytes = 10 << 20

// AdminHandler serves the authenticated management operations: product and
// category CRUD, dashboard stats and image upload. The session guard runs
// in middleware before any of these methods.
type AdminHandler struct {
	service  service.AdminService
	uploader media.Uploader
	renderer *render.Renderer
	refresh  *search.Debouncer
	logger   zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	service service.AdminService,
	uploader media.Uploader,
	renderer *render.Renderer,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		service:  service,
		uploader: uploader,
		renderer: renderer,
		refresh:  search.NewDebouncer(search.DefaultWindow),
		logger:   logger.With().Str("handler", "admin").Logger(),
	}
}

// logStatsAfterWrite refreshes the dashboard counts after a burst of
// mutations. Debounced so rapid successive writes produce a single refresh.
// Runs detached from the request context, which is gone by the time the
// window elapses.
func (h *AdminHandler) logStatsAfterWrite() {
	h.refresh.Call(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		stats, err := h.service.Stats(ctx)
		if err != nil {
			h.logger.Debug().Err(err).Msg("stats refresh after write failed")
			return
		}
		h.logger.Info().
			Int64("products", stats.TotalProducts).
			Int64("categories", stats.TotalCategories).
			Msg("catalog changed")
	})
}

// ListProducts handles GET /api/admin/products.
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// ProductRows handles GET /api/admin/fragments/products, the rendered admin
// table body.
func (h *AdminHandler) ProductRows(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	html, err := h.renderer.ProductRows(products)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeHTML(w, http.StatusOK, html)
}

// CreateProduct handles POST /api/admin/products.
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var draft model.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), draft)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.logStatsAfterWrite()
	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/admin/products/{id}.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/products/")

	var draft model.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, draft)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.logStatsAfterWrite()
	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/admin/products/{id}.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/products/")

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.logStatsAfterWrite()
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /api/admin/categories.
func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/admin/categories.
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), payload.Name)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.logStatsAfterWrite()
	writeJSON(w, http.StatusCreated, category)
}

// DeleteCategory handles DELETE /api/admin/categories/{id}.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/categories/")

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.logStatsAfterWrite()
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Upload handles POST /api/admin/uploads. The image travels straight to the
// media host; only the resulting URL is kept, on the product record the
// operator saves next. Progress is logged per step while the transfer
// length is known.
func (h *AdminHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid multipart form", h.logger)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "an image file is required", h.logger)
		return
	}
	defer file.Close()

	onProgress := func(percent int) {
		h.logger.Debug().
			Str("file", header.Filename).
			Int("percent", percent).
			Msg("upload progress")
	}

	url, err := h.uploader.Upload(r.Context(), header.Filename, file, header.Size, onProgress)
	if err != nil {
		writeUploadError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// writeUploadError maps media host failures onto HTTP responses. Non-200
// upstream answers keep their status and body; transport failures have no
// status to forward.
func writeUploadError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	if httpErr, ok := err.(*media.HTTPError); ok {
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{
			Error:   model.ErrCodeUpstreamWrite,
			Message: httpErr.Error(),
		})
		return
	}
	if transportErr, ok := err.(*media.TransportError); ok {
		writeError(w, http.StatusBadGateway, model.ErrCodeUpstreamWrite, transportErr.Error(), logger)
		return
	}
	writeServiceError(w, err, logger)
}
