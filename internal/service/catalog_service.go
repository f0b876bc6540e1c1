package service

import (
	"context"

	"shopde/internal/model"
	"shopde/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "catalog").Logger(),
	}
}

// ListProducts retrieves products matching the filter, newest first.
func (s *catalogService) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("category", filter.Category).
		Str("search", filter.Search).
		Msg("retrieved products")

	return products, nil
}

// GetProduct retrieves a single product by ID.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product")
		return nil, err
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// ListCategories retrieves all categories ordered by name.
func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, err
	}

	return categories, nil
}
