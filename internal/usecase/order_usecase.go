package usecase

import (
	"context"

	"shopfront/internal/domain/entity"
)

// ShopStats is the operator dashboard summary, derived from the order list on
// every read and never cached.
type ShopStats struct {
	TotalOrders int `json:"totalOrders"`
	Revenue     int `json:"revenue"` // Sum of grand totals of completed orders.
}

// OrderUsecase exposes the two projections of the order list plus the
// operator-only status mutation.
type OrderUsecase interface {
	// ListMyOrders returns the orders belonging to the actor's identity, newest first.
	ListMyOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)

	// ListAllOrders returns the unfiltered order list. Operator only.
	ListAllOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)

	// UpdateStatus transitions an order to the target status. Operator only;
	// transitions out of a terminal status are rejected.
	UpdateStatus(ctx context.Context, actor Actor, orderID string, target entity.OrderStatus) (*entity.Order, error)

	// Stats returns the derived dashboard aggregates. Operator only.
	Stats(ctx context.Context, actor Actor) (*ShopStats, error)
}
