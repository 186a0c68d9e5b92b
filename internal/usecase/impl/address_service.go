package impl

import (
	"context"
	"strings"
	"time"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/errors"
	"shopfront/internal/usecase"

	"github.com/google/uuid"
)

type addressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService creates a new address book service instance.
func NewAddressService(addressRepo repository.AddressRepository) usecase.AddressUsecase {
	return &addressService{addressRepo: addressRepo}
}

// ListAddresses returns all saved addresses, newest first.
func (s *addressService) ListAddresses(ctx context.Context, actor usecase.Actor) ([]*entity.Address, error) {
	if actor.Phone == "" {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	addresses, err := s.addressRepo.ListAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// AddAddress saves a new address and selects it as the delivery destination.
// A blank full address is rejected without mutating anything.
func (s *addressService) AddAddress(ctx context.Context, actor usecase.Actor, input *usecase.AddAddressInput) (*entity.Address, error) {
	if actor.Phone == "" {
		return nil, domainerrors.ErrAuthenticationRequired
	}
	if strings.TrimSpace(input.FullAddress) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full address must not be empty")
	}

	label := strings.TrimSpace(input.Label)
	if label == "" {
		label = "Other"
	}

	address := &entity.Address{
		ID:          uuid.New(),
		Label:       label,
		FullAddress: strings.TrimSpace(input.FullAddress),
		Landmark:    strings.TrimSpace(input.Landmark),
		CreatedAt:   time.Now(),
	}

	if err := s.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	// A freshly saved address becomes the selection, matching the checkout
	// prompt flow where adding one unblocks the order.
	if err := s.addressRepo.SetSelectedAddress(ctx, address.ID); err != nil {
		return nil, errors.Wrap(err, "failed to select address")
	}

	return address, nil
}

// SelectAddress marks an existing address as the delivery destination.
func (s *addressService) SelectAddress(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if actor.Phone == "" {
		return domainerrors.ErrAuthenticationRequired
	}

	if _, err := s.addressRepo.FindAddressByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to find address")
	}

	if err := s.addressRepo.SetSelectedAddress(ctx, id); err != nil {
		return errors.Wrap(err, "failed to select address")
	}

	return nil
}

// SelectedAddress returns the currently selected delivery address.
func (s *addressService) SelectedAddress(ctx context.Context, actor usecase.Actor) (*entity.Address, error) {
	if actor.Phone == "" {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	id, err := s.addressRepo.SelectedAddressID(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoAddressSelected) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to read selected address")
	}

	address, err := s.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	return address, nil
}
