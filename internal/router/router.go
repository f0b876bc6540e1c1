package router

import (
	"net/http"

	"shopde/internal/auth"
	"shopde/internal/handler"
	"shopde/internal/middleware"

	"github.com/rs/zerolog"
)

// AdminPrefix is the path prefix guarded by the session middleware.
const AdminPrefix = "/api/admin"

// New creates a new HTTP router with all routes and middleware configured.
func New(
	catalogHandler *handler.CatalogHandler,
	adminHandler *handler.AdminHandler,
	verifier *auth.Verifier,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Storefront catalogue routes
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			catalogHandler.GetProduct(w, r)
			return
		}
		catalogHandler.ListProducts(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)
	mux.HandleFunc("/api/categories", catalogHandler.ListCategories)

	// Rendered fragments for the static pages
	mux.HandleFunc("/fragments/products", catalogHandler.ProductGrid)
	mux.HandleFunc("/fragments/skeletons", catalogHandler.Skeletons)
	mux.HandleFunc("/fragments/categories", catalogHandler.CategoryChips)

	// Admin routes, dispatched by method and path
	adminProductHandler := func(w http.ResponseWriter, r *http.Request) {
		isCollection := r.URL.Path == AdminPrefix+"/products" || r.URL.Path == AdminPrefix+"/products/"
		switch {
		case r.Method == http.MethodGet && isCollection:
			adminHandler.ListProducts(w, r)
		case r.Method == http.MethodPost && isCollection:
			adminHandler.CreateProduct(w, r)
		case r.Method == http.MethodPut && !isCollection:
			adminHandler.UpdateProduct(w, r)
		case r.Method == http.MethodDelete && !isCollection:
			adminHandler.DeleteProduct(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc(AdminPrefix+"/products", adminProductHandler)
	mux.HandleFunc(AdminPrefix+"/products/", adminProductHandler)

	adminCategoryHandler := func(w http.ResponseWriter, r *http.Request) {
		isCollection := r.URL.Path == AdminPrefix+"/categories" || r.URL.Path == AdminPrefix+"/categories/"
		switch {
		case r.Method == http.MethodGet && isCollection:
			adminHandler.ListCategories(w, r)
		case r.Method == http.MethodPost && isCollection:
			adminHandler.CreateCategory(w, r)
		case r.Method == http.MethodDelete && !isCollection:
			adminHandler.DeleteCategory(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc(AdminPrefix+"/categories", adminCategoryHandler)
	mux.HandleFunc(AdminPrefix+"/categories/", adminCategoryHandler)

	mux.HandleFunc(AdminPrefix+"/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		adminHandler.Stats(w, r)
	})

	mux.HandleFunc(AdminPrefix+"/uploads", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		adminHandler.Upload(w, r)
	})

	mux.HandleFunc(AdminPrefix+"/fragments/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		adminHandler.ProductRows(w, r)
	})

	// Apply middleware in order: Recovery -> Logging -> CORS -> SessionAuth
	var h http.Handler = mux
	h = middleware.SessionAuth(verifier, AdminPrefix, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
