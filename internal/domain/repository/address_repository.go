package repository

import (
	"context"

	"shopfront/internal/domain/entity"
	"shopfront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrNoAddressSelected is returned when no delivery address has been selected yet.
	ErrNoAddressSelected = errors.New("no address selected")
)

// AddressRepository defines the interface for the append-only address book
// plus the scalar "currently selected address" key.
type AddressRepository interface {
	// CreateAddress persists a new address. Addresses are never edited or deleted.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// ListAddresses returns all saved addresses, newest first.
	ListAddresses(ctx context.Context) ([]*entity.Address, error)

	// FindAddressByID retrieves an address by its unique ID.
	// Returns ErrAddressNotFound if no such address exists.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// SelectedAddressID returns the id of the currently selected delivery address.
	// Returns ErrNoAddressSelected when none has been chosen.
	SelectedAddressID(ctx context.Context) (uuid.UUID, error)

	// SetSelectedAddress stores the id of the chosen delivery address.
	SetSelectedAddress(ctx context.Context, id uuid.UUID) error
}
