package usecase

import (
	"context"

	"shopfront/internal/domain/entity"
)

// CartView is a cart together with its live pricing quote.
type CartView struct {
	Lines []entity.CartLine `json:"lines"`
	Bill  entity.Bill       `json:"bill"`
}

// CartUsecase defines the interface for building a cart before checkout.
// Every role, including guests, may use it.
type CartUsecase interface {
	// GetCart returns the actor's cart with its current quote.
	GetCart(ctx context.Context, actor Actor) (*CartView, error)

	// AddItem puts one unit of a product into the actor's cart.
	AddItem(ctx context.Context, actor Actor, productID string) (*CartView, error)

	// ChangeQuantity adjusts a line's quantity by delta; a floor of 0 removes the line.
	ChangeQuantity(ctx context.Context, actor Actor, productID string, delta int) (*CartView, error)

	// ClearCart empties the actor's cart.
	ClearCart(ctx context.Context, actor Actor) error
}
