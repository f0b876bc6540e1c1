package repository

import (
	"context"
	"errors"
	"fmt"

	"shopde/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = "id, name, price, category, image_url, created_at"

// productRepository implements ProductRepository using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List retrieves products matching the filter, newest first. Criteria
// combine with AND; inactive criteria are left out of the query entirely.
func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE 1=1"
	args := []interface{}{}
	n := 1

	if filter.HasCategory() {
		query += fmt.Sprintf(" AND category = $%d", n)
		args = append(args, filter.Category)
		n++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", n)
		args = append(args, "%"+filter.Search+"%")
		n++
	}
	if filter.MinPrice != nil {
		query += fmt.Sprintf(" AND price >= $%d", n)
		args = append(args, *filter.MinPrice)
		n++
	}
	if filter.MaxPrice != nil {
		query += fmt.Sprintf(" AND price <= $%d", n)
		args = append(args, *filter.MaxPrice)
		n++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, &model.RemoteReadError{Op: "list products", Err: err}
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.ImageURL, &p.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, &model.RemoteReadError{Op: "scan product", Err: err}
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, &model.RemoteReadError{Op: "iterate products", Err: err}
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, &model.RemoteReadError{Op: "get product", Err: err}
	}

	return p, nil
}

// Create inserts a product and returns the stored record.
func (r *productRepository) Create(ctx context.Context, draft model.ProductDraft) (*model.Product, error) {
	query := `
		INSERT INTO products (name, price, category, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + productColumns

	p, err := scanProduct(r.pool.QueryRow(ctx, query, draft.Name, draft.Price, draft.Category, draft.ImageURL))
	if err != nil {
		r.logger.Error().Err(err).Str("name", draft.Name).Msg("failed to insert product")
		return nil, &model.RemoteWriteError{Op: "create product", Err: err}
	}

	r.logger.Debug().Str("product_id", p.ID).Msg("product created")
	return p, nil
}

// Update rewrites a product by id and returns the stored record.
func (r *productRepository) Update(ctx context.Context, id string, draft model.ProductDraft) (*model.Product, error) {
	query := `
		UPDATE products
		SET name = $1, price = $2, category = $3, image_url = $4
		WHERE id = $5
		RETURNING ` + productColumns

	p, err := scanProduct(r.pool.QueryRow(ctx, query, draft.Name, draft.Price, draft.Category, draft.ImageURL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id).Msg("product not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, &model.RemoteWriteError{Op: "update product", Err: err}
	}

	return p, nil
}

// Delete removes a product by id.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return &model.RemoteWriteError{Op: "delete product", Err: err}
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	return nil
}

// Count returns the total number of products.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, &model.RemoteReadError{Op: "count products", Err: err}
	}
	return count, nil
}

// CountByCategory returns how many products reference the category name.
func (r *productRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products WHERE category = $1", category).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Str("category", category).Msg("failed to count products in category")
		return 0, &model.RemoteReadError{Op: "count products by category", Err: err}
	}
	return count, nil
}
