package usecase

import (
	"context"

	"shopfront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAddressInput carries a new address-book entry.
type AddAddressInput struct {
	Label       string `json:"label" validate:"required"`
	FullAddress string `json:"fullAddress" validate:"required"`
	Landmark    string `json:"landmark"`
}

// AddressUsecase manages the append-only address book and the selected
// delivery address.
type AddressUsecase interface {
	// ListAddresses returns all saved addresses, newest first.
	ListAddresses(ctx context.Context, actor Actor) ([]*entity.Address, error)

	// AddAddress saves a new address. Entries are never edited or removed.
	AddAddress(ctx context.Context, actor Actor, input *AddAddressInput) (*entity.Address, error)

	// SelectAddress marks an existing address as the delivery destination.
	SelectAddress(ctx context.Context, actor Actor, id uuid.UUID) error

	// SelectedAddress returns the currently selected delivery address.
	SelectedAddress(ctx context.Context, actor Actor) (*entity.Address, error)
}
