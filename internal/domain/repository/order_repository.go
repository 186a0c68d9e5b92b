package repository

import (
	"context"

	"shopfront/internal/domain/entity"
	"shopfront/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderID is returned when appending an order whose id already exists.
	ErrDuplicateOrderID = errors.New("order id already exists")
)

// OrderRepository defines the interface for the order list, the single source
// of truth for all order views. The list is append-only and kept most-recent-first;
// status is the only field updated after creation.
type OrderRepository interface {
	// AppendOrder prepends a new order to the list.
	// Returns ErrDuplicateOrderID if an order with the same id already exists.
	AppendOrder(ctx context.Context, order *entity.Order) error

	// ListOrders returns every order, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// ListOrdersByCustomer returns the orders belonging to one customer identity, newest first.
	ListOrdersByCustomer(ctx context.Context, customerPhone string) ([]*entity.Order, error)

	// FindOrderByID retrieves a single order.
	// Returns ErrOrderNotFound if no such order exists.
	FindOrderByID(ctx context.Context, id string) (*entity.Order, error)

	// UpdateOrder persists an order whose status changed.
	UpdateOrder(ctx context.Context, order *entity.Order) error
}
