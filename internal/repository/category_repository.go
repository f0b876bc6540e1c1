package repository

import (
	"context"
	"errors"

	"shopde/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// categoryRepository implements CategoryRepository using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// List retrieves all categories ordered by name.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, name FROM categories ORDER BY name")
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, &model.RemoteReadError{Op: "list categories", Err: err}
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, &model.RemoteReadError{Op: "scan category", Err: err}
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, &model.RemoteReadError{Op: "iterate categories", Err: err}
	}

	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *categoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx, "SELECT id, name FROM categories WHERE id = $1", id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("category_id", id).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("category_id", id).Msg("failed to query category")
		return nil, &model.RemoteReadError{Op: "get category", Err: err}
	}

	return &c, nil
}

// Create inserts a category and returns the stored record.
func (r *categoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx,
		"INSERT INTO categories (name) VALUES ($1) RETURNING id, name", name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		r.logger.Error().Err(err).Str("name", name).Msg("failed to insert category")
		return nil, &model.RemoteWriteError{Op: "create category", Err: err}
	}

	r.logger.Debug().Str("category_id", c.ID).Str("name", c.Name).Msg("category created")
	return &c, nil
}

// Delete removes a category by id.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", id).Msg("failed to delete category")
		return &model.RemoteWriteError{Op: "delete category", Err: err}
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("category_id", id).Msg("category not found for delete")
		return model.ErrCategoryNotFound
	}

	return nil
}

// Count returns the total number of categories.
func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM categories").Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count categories")
		return 0, &model.RemoteReadError{Op: "count categories", Err: err}
	}
	return count, nil
}
