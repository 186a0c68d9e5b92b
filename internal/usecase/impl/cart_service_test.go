package impl

import (
	"context"
	"testing"

	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/infra/memstore"
	"shopfront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) usecase.CartUsecase {
	t.Helper()

	_, _, catalogRepo := testRepos(t)

	return NewCartService(memstore.NewCartRepository(), catalogRepo, NewPricingService(testConfig()))
}

func TestCartService_AddItem_QuotesTheCart(t *testing.T) {
	svc := newCartFixture(t)
	ctx := context.Background()
	actor := usecase.Guest("guest-key")

	// Two pens at 10 from the built-in catalog.
	_, err := svc.AddItem(ctx, actor, "1")
	require.NoError(t, err)
	view, err := svc.AddItem(ctx, actor, "1")
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, 20, view.Bill.Subtotal)
	assert.Equal(t, 29, view.Bill.DeliveryFee)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	svc := newCartFixture(t)

	_, err := svc.AddItem(context.Background(), usecase.Guest("guest-key"), "no-such-product")

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_ChangeQuantity_ZeroRemovesLine(t *testing.T) {
	svc := newCartFixture(t)
	ctx := context.Background()
	actor := usecase.Guest("guest-key")

	_, err := svc.AddItem(ctx, actor, "1")
	require.NoError(t, err)

	view, err := svc.ChangeQuantity(ctx, actor, "1", -2)
	require.NoError(t, err)

	assert.Empty(t, view.Lines)
	assert.Equal(t, 0, view.Bill.GrandTotal)
}

func TestCartService_CartsAreIsolatedByKey(t *testing.T) {
	svc := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, usecase.Guest("key-a"), "1")
	require.NoError(t, err)

	view, err := svc.GetCart(ctx, usecase.Guest("key-b"))
	require.NoError(t, err)

	assert.Empty(t, view.Lines)
}

func TestCartService_ClearCart(t *testing.T) {
	svc := newCartFixture(t)
	ctx := context.Background()
	actor := usecase.Guest("guest-key")

	_, err := svc.AddItem(ctx, actor, "2")
	require.NoError(t, err)
	require.NoError(t, svc.ClearCart(ctx, actor))

	view, err := svc.GetCart(ctx, actor)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}
