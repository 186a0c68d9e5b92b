package localstore

import (
	"context"
	"sync"

	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"
	"shopfront/internal/errors"

	"github.com/google/uuid"
)

const (
	addressesKey       = "addresses"
	selectedAddressKey = "selected_address"
)

type addressRepository struct {
	store *Store
	mu    sync.Mutex
}

// NewAddressRepository creates a repository over the persisted address book.
func NewAddressRepository(store *Store) repository.AddressRepository {
	return &addressRepository{store: store}
}

// CreateAddress prepends the new address; the book is append-only.
func (r *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	addresses, err := r.load()
	if err != nil {
		return err
	}

	addresses = append([]*entity.Address{address}, addresses...)

	return r.store.Put(addressesKey, addresses)
}

// ListAddresses returns all saved addresses, newest first.
func (r *addressRepository) ListAddresses(ctx context.Context) ([]*entity.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// FindAddressByID retrieves an address by its unique ID.
func (r *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addresses, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, address := range addresses {
		if address.ID == id {
			return address, nil
		}
	}

	return nil, errors.WithStack(repository.ErrAddressNotFound)
}

// SelectedAddressID returns the persisted scalar selection.
func (r *addressRepository) SelectedAddressID(ctx context.Context) (uuid.UUID, error) {
	var raw string
	found, err := r.store.Get(selectedAddressKey, &raw)
	if err != nil {
		return uuid.Nil, err
	}
	if !found || raw == "" {
		return uuid.Nil, errors.WithStack(repository.ErrNoAddressSelected)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse selected address id")
	}

	return id, nil
}

// SetSelectedAddress stores the scalar selection.
func (r *addressRepository) SetSelectedAddress(ctx context.Context, id uuid.UUID) error {
	return r.store.Put(selectedAddressKey, id.String())
}

func (r *addressRepository) load() ([]*entity.Address, error) {
	var addresses []*entity.Address
	if _, err := r.store.Get(addressesKey, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}
