package handler

import (
	"net/http"

	"shopfront/internal/delivery/http/response"
	"shopfront/internal/domain/entity"
	"shopfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order listing and status handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// ListMyOrders returns the caller's own orders, newest first.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	orders, err := h.uc.ListMyOrders(c.Request().Context(), mustActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// ListAllOrders returns every order in the shop. Operator only.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context(), mustActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

type updateStatusInput struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// UpdateStatus moves an order along its lifecycle. Operator only.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var input updateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), mustActor(c), c.Param("id"), input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Status updated")
}

// Stats returns the derived dashboard aggregates. Operator only.
func (h *OrderHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context(), mustActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
