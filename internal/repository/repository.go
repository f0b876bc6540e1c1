package repository

import (
	"context"

	"shopde/internal/model"
)

// ProductRepository defines the data access operations on the products table.
// Read failures surface as *model.RemoteReadError and write failures as
// *model.RemoteWriteError, both carrying the store's error verbatim.
type ProductRepository interface {
	// List retrieves products matching the filter, newest first. An empty
	// result is an empty slice, not an error.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a product and returns the stored record, including the
	// generated id and creation timestamp.
	Create(ctx context.Context, draft model.ProductDraft) (*model.Product, error)

	// Update rewrites a product by id and returns the stored record, or
	// (nil, nil) when no row matched.
	Update(ctx context.Context, id string, draft model.ProductDraft) (*model.Product, error)

	// Delete removes a product by id. Deleting an absent id yields
	// model.ErrProductNotFound.
	Delete(ctx context.Context, id string) error

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)

	// CountByCategory returns how many products reference the category name.
	CountByCategory(ctx context.Context, category string) (int64, error)
}

// CategoryRepository defines the data access operations on the categories
// table.
type CategoryRepository interface {
	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single category. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*model.Category, error)

	// Create inserts a category and returns the stored record.
	Create(ctx context.Context, name string) (*model.Category, error)

	// Delete removes a category by id. Deleting an absent id yields
	// model.ErrCategoryNotFound.
	Delete(ctx context.Context, id string) error

	// Count returns the total number of categories.
	Count(ctx context.Context) (int64, error)
}
