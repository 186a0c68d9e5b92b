package localstore

import (
	"context"
	"testing"

	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_DefaultsWhenUnedited(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))
	ctx := context.Background()

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Blue Gel Pen", products[0].Name)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)
}

func TestCatalogRepository_SaveProductPersistsOverrides(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	repo := NewCatalogRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.SaveProduct(ctx, entity.Product{
		ID:       "1",
		Name:     "Blue Gel Pen",
		Price:    12,
		Category: "Pens",
	}))

	reopened, err := New(dir)
	require.NoError(t, err)

	product, err := NewCatalogRepository(reopened).FindProductByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 12, product.Price)
}

func TestCatalogRepository_SaveProductAddsNewEntries(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveProduct(ctx, entity.Product{
		ID:       "4",
		Name:     "Eraser",
		Price:    5,
		Category: "School Items",
	}))

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestCatalogRepository_FindUnknownProduct(t *testing.T) {
	repo := NewCatalogRepository(newTestStore(t))

	_, err := repo.FindProductByID(context.Background(), "no-such-product")

	require.ErrorIs(t, err, repository.ErrProductNotFound)
}
