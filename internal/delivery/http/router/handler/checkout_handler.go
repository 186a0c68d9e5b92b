package handler

import (
	"net/http"

	"shopfront/internal/delivery/http/response"
	"shopfront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for checkout handlers.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// PlaceOrder checks out the caller's cart.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var input *usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), mustActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.PaymentSession != nil {
		return response.Success(c, http.StatusAccepted, output, "Awaiting payment")
	}

	return response.Success(c, http.StatusCreated, output, "Order placed")
}

// PlaceServiceOrder checks out a print-service job.
func (h *CheckoutHandler) PlaceServiceOrder(c echo.Context) error {
	var input *usecase.ServiceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.PlaceServiceOrder(c.Request().Context(), mustActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.PaymentSession != nil {
		return response.Success(c, http.StatusAccepted, output, "Awaiting payment")
	}

	return response.Success(c, http.StatusCreated, output, "Order placed")
}

type confirmPaymentInput struct {
	SessionID string `json:"sessionId" validate:"required,uuid"`
	Reference string `json:"reference" validate:"required"`
}

// ConfirmPayment finalizes a pending online checkout with the payment
// collaborator's reference.
func (h *CheckoutHandler) ConfirmPayment(c echo.Context) error {
	var input confirmPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment confirmation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	sessionID, err := uuid.Parse(input.SessionID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID format")
	}

	output, err := h.uc.ConfirmPayment(c.Request().Context(), mustActor(c), sessionID, input.Reference)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order placed")
}
