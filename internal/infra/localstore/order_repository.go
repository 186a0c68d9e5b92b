package localstore

import (
	"context"
	"sync"

	"shopfront/config"
	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"
	"shopfront/internal/errors"
)

const ordersKey = "orders"

// NewFromConfig builds the keyed store at the configured path.
func NewFromConfig(cfg *config.Config) (*Store, error) {
	return New(cfg.Storage.Path)
}

type orderRepository struct {
	store *Store

	// Serializes read-modify-write cycles on the order list; the store's own
	// lock only covers a single Get or Put.
	mu sync.Mutex
}

// NewOrderRepository creates a repository over the persisted order list.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

// AppendOrder prepends the order, keeping the list most-recent-first.
func (r *orderRepository) AppendOrder(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return err
	}

	for _, existing := range orders {
		if existing.ID == order.ID {
			return errors.WithStack(repository.ErrDuplicateOrderID)
		}
	}

	orders = append([]*entity.Order{order}, orders...)

	return r.store.Put(ordersKey, orders)
}

// ListOrders returns every order, newest first.
func (r *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// ListOrdersByCustomer filters the list down to one customer identity.
func (r *orderRepository) ListOrdersByCustomer(ctx context.Context, customerPhone string) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return nil, err
	}

	mine := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if order.CustomerPhone == customerPhone {
			mine = append(mine, order)
		}
	}

	return mine, nil
}

// FindOrderByID retrieves a single order.
func (r *orderRepository) FindOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if order.ID == id {
			return order, nil
		}
	}

	return nil, errors.WithStack(repository.ErrOrderNotFound)
}

// UpdateOrder replaces the stored record for an order whose status changed.
func (r *orderRepository) UpdateOrder(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return err
	}

	for i, existing := range orders {
		if existing.ID == order.ID {
			orders[i] = order

			return r.store.Put(ordersKey, orders)
		}
	}

	return errors.WithStack(repository.ErrOrderNotFound)
}

func (r *orderRepository) load() ([]*entity.Order, error) {
	var orders []*entity.Order
	if _, err := r.store.Get(ordersKey, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
