package repository

import (
	"context"

	"shopfront/internal/domain/entity"
)

// CartRepository defines the interface for session-scoped carts. Carts are
// keyed by session subject (phone, or an anonymous guest key), live only for
// the process lifetime and are never persisted across restarts.
type CartRepository interface {
	// GetCart returns the cart for a session key, creating an empty one if absent.
	GetCart(ctx context.Context, key string) (*entity.Cart, error)

	// SaveCart stores the cart for a session key.
	SaveCart(ctx context.Context, key string, cart *entity.Cart) error

	// ClearCart removes the cart for a session key.
	ClearCart(ctx context.Context, key string) error
}
