package impl

import (
	"context"
	"testing"

	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts_FiltersByCategory(t *testing.T) {
	_, _, catalogRepo := testRepos(t)
	svc := NewCatalogService(catalogRepo)
	ctx := context.Background()

	all, err := svc.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// "All" behaves like no filter.
	unfiltered, err := svc.ListProducts(ctx, "All")
	require.NoError(t, err)
	assert.Len(t, unfiltered, 3)

	pens, err := svc.ListProducts(ctx, "Pens")
	require.NoError(t, err)
	require.Len(t, pens, 1)
	assert.Equal(t, "Blue Gel Pen", pens[0].Name)
}

func TestCatalogService_UpsertProduct_OperatorOnly(t *testing.T) {
	_, _, catalogRepo := testRepos(t)
	svc := NewCatalogService(catalogRepo)
	ctx := context.Background()

	input := &usecase.UpsertProductInput{ID: "4", Name: "Eraser", Price: 5, Category: "School Items"}

	_, err := svc.UpsertProduct(ctx, customerActor(), input)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	product, err := svc.UpsertProduct(ctx, operatorActor(), input)
	require.NoError(t, err)
	assert.Equal(t, "Eraser", product.Name)

	products, err := svc.ListProducts(ctx, "School Items")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_UpsertProduct_NegativePriceRejected(t *testing.T) {
	_, _, catalogRepo := testRepos(t)
	svc := NewCatalogService(catalogRepo)

	_, err := svc.UpsertProduct(context.Background(), operatorActor(), &usecase.UpsertProductInput{
		ID:       "4",
		Name:     "Eraser",
		Price:    -1,
		Category: "School Items",
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
