package integration

import (
	"context"
	"testing"

	"shopde/internal/model"
	"shopde/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("List without filter returns everything newest first", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		products, err := repo.List(ctx, model.ProductFilter{})
		require.NoError(t, err)
		require.Len(t, products, 5)
		assert.Equal(t, "Audífonos inalámbricos", products[0].Name)
		assert.Equal(t, "Mug cerámica", products[4].Name)
	})

	t.Run("List filters by category", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		products, err := repo.List(ctx, model.ProductFilter{Category: "Cocina"})
		require.NoError(t, err)
		assert.Len(t, products, 2)
		for _, p := range products {
			assert.Equal(t, "Cocina", p.Category)
		}
	})

	t.Run("List search is case-insensitive substring match", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		products, err := repo.List(ctx, model.ProductFilter{Search: "LÁMPARA"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Lámpara LED", products[0].Name)
	})

	t.Run("List price bounds are inclusive", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		min, max := 45000.0, 120000.0
		products, err := repo.List(ctx, model.ProductFilter{MinPrice: &min, MaxPrice: &max})
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("List combines criteria with AND", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		max := 50000.0
		products, err := repo.List(ctx, model.ProductFilter{Category: "Hogar", MaxPrice: &max})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Cojín decorativo", products[0].Name)
	})

	t.Run("List with no matches returns an empty slice", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		products, err := repo.List(ctx, model.ProductFilter{Search: "inexistente"})
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("Create then GetByID round-trips the record", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		draft := model.ProductDraft{
			Name:     "Termo acero",
			Price:    65000,
			Category: "Cocina",
			ImageURL: "https://cdn.example.com/termo.jpg",
		}
		created, err := repo.Create(ctx, draft)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, draft.Name, got.Name)
		assert.Equal(t, draft.Price, got.Price)
	})

	t.Run("GetByID returns nil for non-existent product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		product, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("Update rewrites the record", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := repo.Create(ctx, model.ProductDraft{
			Name: "Mug", Price: 35000, Category: "Cocina", ImageURL: "https://x/1.jpg",
		})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, model.ProductDraft{
			Name: "Mug grande", Price: 42000, Category: "Cocina", ImageURL: "https://x/1.jpg",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Mug grande", updated.Name)
		assert.Equal(t, 42000.0, updated.Price)
	})

	t.Run("Update of a missing product yields nil", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		updated, err := repo.Update(ctx, "00000000-0000-0000-0000-000000000000", model.ProductDraft{
			Name: "x", Price: 1, Category: "c", ImageURL: "u",
		})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("Delete removes the record", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := repo.Create(ctx, model.ProductDraft{
			Name: "Mug", Price: 35000, Category: "Cocina", ImageURL: "https://x/1.jpg",
		})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete of a missing product is not found", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		err := repo.Delete(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("Counts", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)

		inCocina, err := repo.CountByCategory(ctx, "Cocina")
		require.NoError(t, err)
		assert.Equal(t, int64(2), inCocina)
	})
}

func TestCategoryRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewCategoryRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("List returns categories alphabetically", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		categories, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "Cocina", categories[0].Name)
		assert.Equal(t, "Hogar", categories[1].Name)
		assert.Equal(t, "Tecnología", categories[2].Name)
	})

	t.Run("Create then Delete", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := repo.Create(ctx, "Jardín")
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Jardín", got.Name)

		require.NoError(t, repo.Delete(ctx, created.ID))

		got, err = repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Duplicate name is a write failure", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		_, err := repo.Create(ctx, "Cocina")
		require.NoError(t, err)

		_, err = repo.Create(ctx, "Cocina")
		require.Error(t, err)
		var writeErr *model.RemoteWriteError
		assert.ErrorAs(t, err, &writeErr)
	})

	t.Run("Count", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}
