// Package memstore holds the process-lifetime stores. Carts live here and
// nowhere else: they are owned by the active session and intentionally do not
// survive a restart.
package memstore

import (
	"context"
	"sync"

	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"
)

type cartRepository struct {
	mu    sync.RWMutex
	carts map[string]*entity.Cart
}

// NewCartRepository creates the in-memory cart store.
func NewCartRepository() repository.CartRepository {
	return &cartRepository{carts: make(map[string]*entity.Cart)}
}

// GetCart returns a copy of the cart for a session key, or an empty cart.
func (r *cartRepository) GetCart(ctx context.Context, key string) (*entity.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[key]
	if !ok {
		return &entity.Cart{}, nil
	}

	// Copy so callers can mutate freely before saving back.
	lines := append([]entity.CartLine(nil), cart.Lines...)

	return &entity.Cart{Lines: lines}, nil
}

// SaveCart stores the cart for a session key.
func (r *cartRepository) SaveCart(ctx context.Context, key string, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[key] = &entity.Cart{Lines: append([]entity.CartLine(nil), cart.Lines...)}

	return nil
}

// ClearCart removes the cart for a session key.
func (r *cartRepository) ClearCart(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, key)

	return nil
}
