package impl

import (
	"context"

	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/errors"
	"shopfront/internal/usecase"
)

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	pricing     usecase.PricingUsecase
}

// NewCartService creates a new cart service instance.
func NewCartService(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository, pricing usecase.PricingUsecase) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		pricing:     pricing,
	}
}

// GetCart returns the actor's cart with its current quote.
func (s *cartService) GetCart(ctx context.Context, actor usecase.Actor) (*usecase.CartView, error) {
	cart, err := s.cartRepo.GetCart(ctx, actor.CartKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return &usecase.CartView{Lines: cart.Lines, Bill: s.pricing.Quote(cart)}, nil
}

// AddItem puts one unit of a product into the actor's cart.
func (s *cartService) AddItem(ctx context.Context, actor usecase.Actor, productID string) (*usecase.CartView, error) {
	product, err := s.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	cart, err := s.cartRepo.GetCart(ctx, actor.CartKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.AddItem(*product)

	if err := s.cartRepo.SaveCart(ctx, actor.CartKey, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return &usecase.CartView{Lines: cart.Lines, Bill: s.pricing.Quote(cart)}, nil
}

// ChangeQuantity adjusts a line's quantity by delta. An unknown product id is
// a no-op, not an error.
func (s *cartService) ChangeQuantity(ctx context.Context, actor usecase.Actor, productID string, delta int) (*usecase.CartView, error) {
	cart, err := s.cartRepo.GetCart(ctx, actor.CartKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.ChangeQuantity(productID, delta)

	if err := s.cartRepo.SaveCart(ctx, actor.CartKey, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return &usecase.CartView{Lines: cart.Lines, Bill: s.pricing.Quote(cart)}, nil
}

// ClearCart empties the actor's cart.
func (s *cartService) ClearCart(ctx context.Context, actor usecase.Actor) error {
	if err := s.cartRepo.ClearCart(ctx, actor.CartKey); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
