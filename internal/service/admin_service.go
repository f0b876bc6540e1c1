package service

import (
	"context"
	"strings"

	"shopde/internal/model"
	"shopde/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// adminService implements AdminService.
type adminService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "admin").Logger(),
	}
}

// ListProducts retrieves all products, newest first.
func (s *adminService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx, model.ProductFilter{})
}

// CreateProduct validates the draft and inserts it.
func (s *adminService) CreateProduct(ctx context.Context, draft model.ProductDraft) (*model.Product, error) {
	if msgs := model.ValidateProductDraft(draft); len(msgs) > 0 {
		s.logger.Warn().Strs("messages", msgs).Msg("product draft failed validation")
		return nil, &model.ValidationFailedError{Messages: msgs}
	}

	product, err := s.productRepo.Create(ctx, draft)
	if err != nil {
		s.logger.Error().Err(err).Str("name", draft.Name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

// UpdateProduct validates the draft and rewrites the product by id.
func (s *adminService) UpdateProduct(ctx context.Context, id string, draft model.ProductDraft) (*model.Product, error) {
	if id == "" {
		return nil, model.ErrProductNotFound
	}

	if msgs := model.ValidateProductDraft(draft); len(msgs) > 0 {
		s.logger.Warn().Str("product_id", id).Strs("messages", msgs).Msg("product draft failed validation")
		return nil, &model.ValidationFailedError{Messages: msgs}
	}

	product, err := s.productRepo.Update(ctx, id, draft)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, err
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", product.ID).Msg("product updated")
	return product, nil
}

// DeleteProduct removes a product by id.
func (s *adminService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return err
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// ListCategories retrieves all categories ordered by name.
func (s *adminService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateCategory inserts a category with the given name.
func (s *adminService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrCategoryNameRequired
	}

	category, err := s.categoryRepo.Create(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, err
	}

	s.logger.Info().Str("category_id", category.ID).Str("name", category.Name).Msg("category created")
	return category, nil
}

// DeleteCategory removes a category by id. Products reference categories by
// name with no foreign key, so the referential-integrity policy lives here:
// a category still referenced by products is refused rather than orphaning
// the references.
func (s *adminService) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrCategoryNotFound
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("category_id", id).Msg("failed to load category")
		return err
	}
	if category == nil {
		return model.ErrCategoryNotFound
	}

	inUse, err := s.productRepo.CountByCategory(ctx, category.Name)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category.Name).Msg("failed to check category references")
		return err
	}
	if inUse > 0 {
		s.logger.Warn().
			Str("category", category.Name).
			Int64("products", inUse).
			Msg("refusing to delete category still in use")
		return model.ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("category_id", id).Msg("failed to delete category")
		return err
	}

	s.logger.Info().Str("category_id", id).Str("name", category.Name).Msg("category deleted")
	return nil
}

// Stats returns the dashboard counts. Both counts run concurrently; the
// summary is only produced once both have arrived.
func (s *adminService) Stats(ctx context.Context) (model.CatalogStats, error) {
	var stats model.CatalogStats

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.productRepo.Count(ctx)
		if err != nil {
			return err
		}
		stats.TotalProducts = count
		return nil
	})

	g.Go(func() error {
		count, err := s.categoryRepo.Count(ctx)
		if err != nil {
			return err
		}
		stats.TotalCategories = count
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to load dashboard stats")
		return model.CatalogStats{}, err
	}

	return stats, nil
}
