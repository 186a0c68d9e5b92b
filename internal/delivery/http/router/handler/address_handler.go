package handler

import (
	"net/http"

	"shopfront/internal/delivery/http/response"
	"shopfront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address-book handlers.
type AddressHandler struct {
	uc usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// ListAddresses returns the caller's saved addresses, newest first.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.uc.ListAddresses(c.Request().Context(), mustActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// AddAddress appends a new entry to the address book and selects it.
func (h *AddressHandler) AddAddress(c echo.Context) error {
	var input *usecase.AddAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.AddAddress(c.Request().Context(), mustActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address saved")
}

type selectAddressInput struct {
	ID string `json:"id" validate:"required,uuid"`
}

// SelectAddress marks an existing entry as the delivery destination.
func (h *AddressHandler) SelectAddress(c echo.Context) error {
	var input selectAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address selection input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	id, err := uuid.Parse(input.ID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID format")
	}

	if err := h.uc.SelectAddress(c.Request().Context(), mustActor(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address selected")
}

// SelectedAddress returns the currently selected delivery address.
func (h *AddressHandler) SelectedAddress(c echo.Context) error {
	address, err := h.uc.SelectedAddress(c.Request().Context(), mustActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "")
}
