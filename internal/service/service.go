package service

import (
	"context"

	"shopde/internal/model"
)

// CatalogService defines the storefront read pipeline.
type CatalogService interface {
	// ListProducts retrieves products matching the filter, newest first.
	// All filter criteria combine with AND; no matches is an empty slice.
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetProduct retrieves a single product. An absent id is a failure
	// (model.ErrProductNotFound), not an empty success.
	GetProduct(ctx context.Context, id string) (*model.Product, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]model.Category, error)
}

// AdminService defines the authenticated management operations. Callers are
// expected to sit behind the session guard; the service itself performs no
// authentication.
type AdminService interface {
	// ListProducts retrieves all products, newest first.
	ListProducts(ctx context.Context) ([]model.Product, error)

	// CreateProduct validates the draft and inserts it. A draft failing
	// validation blocks the write entirely and yields
	// *model.ValidationFailedError with the messages.
	CreateProduct(ctx context.Context, draft model.ProductDraft) (*model.Product, error)

	// UpdateProduct validates the draft and rewrites the product by id.
	UpdateProduct(ctx context.Context, id string, draft model.ProductDraft) (*model.Product, error)

	// DeleteProduct removes a product by id.
	DeleteProduct(ctx context.Context, id string) error

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]model.Category, error)

	// CreateCategory inserts a category with the given name.
	CreateCategory(ctx context.Context, name string) (*model.Category, error)

	// DeleteCategory removes a category by id. Categories still referenced
	// by products are refused with model.ErrCategoryInUse.
	DeleteCategory(ctx context.Context, id string) error

	// Stats returns the dashboard counts. Both counts are fetched
	// concurrently and joined; no partial result is produced.
	Stats(ctx context.Context) (model.CatalogStats, error)
}
