package impl

import (
	"context"
	"log/slog"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/errors"
	"shopfront/internal/usecase"
)

type orderService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderService creates a new order tracking/fulfillment service instance.
func NewOrderService(orderRepo repository.OrderRepository, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{orderRepo: orderRepo, logger: logger}
}

// ListMyOrders returns the customer projection: the actor's own orders only.
func (s *orderService) ListMyOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	if actor.Phone == "" {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	orders, err := s.orderRepo.ListOrdersByCustomer(ctx, actor.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	return orders, nil
}

// ListAllOrders returns the unfiltered operator projection.
func (s *orderService) ListAllOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	if actor.Role != entity.RoleOperator {
		return nil, domainerrors.ErrForbidden
	}

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus transitions an order. The operator may jump to any status from
// a non-terminal one; terminal orders reject every further transition.
func (s *orderService) UpdateStatus(ctx context.Context, actor usecase.Actor, orderID string, target entity.OrderStatus) (*entity.Order, error) {
	if actor.Role != entity.RoleOperator {
		return nil, domainerrors.ErrForbidden
	}
	if !target.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status: " + target.String())
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if err := order.TransitionTo(target); err != nil {
		if errors.Is(err, entity.ErrInvalidTransition) {
			return nil, domainerrors.ErrInvalidTransition
		}

		return nil, errors.Wrap(err, "failed to transition order")
	}

	if err := s.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	s.logger.Info("order status updated",
		slog.String("orderId", order.ID),
		slog.String("status", order.Status.String()),
	)

	return order, nil
}

// Stats recomputes the dashboard aggregates from the order list on every
// read. Revenue is derived, never cached.
func (s *orderService) Stats(ctx context.Context, actor usecase.Actor) (*usecase.ShopStats, error) {
	if actor.Role != entity.RoleOperator {
		return nil, domainerrors.ErrForbidden
	}

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	stats := &usecase.ShopStats{TotalOrders: len(orders)}
	for _, order := range orders {
		if order.Status == entity.StatusCompleted {
			stats.Revenue += order.Bill.GrandTotal
		}
	}

	return stats, nil
}
