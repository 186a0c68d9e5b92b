package localstore

import (
	"context"
	"testing"
	"time"

	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAddress(label string) *entity.Address {
	return &entity.Address{
		ID:          uuid.New(),
		Label:       label,
		FullAddress: "12 Station Road, Gonda",
		CreatedAt:   time.Now(),
	}
}

func TestAddressRepository_CreateAndList(t *testing.T) {
	repo := NewAddressRepository(newTestStore(t))
	ctx := context.Background()

	home := sampleAddress("Home")
	office := sampleAddress("Office")
	require.NoError(t, repo.CreateAddress(ctx, home))
	require.NoError(t, repo.CreateAddress(ctx, office))

	addresses, err := repo.ListAddresses(ctx)
	require.NoError(t, err)

	require.Len(t, addresses, 2)
	assert.Equal(t, office.ID, addresses[0].ID)
	assert.Equal(t, home.ID, addresses[1].ID)
}

func TestAddressRepository_SelectionPersists(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	repo := NewAddressRepository(store)
	ctx := context.Background()

	address := sampleAddress("Home")
	require.NoError(t, repo.CreateAddress(ctx, address))
	require.NoError(t, repo.SetSelectedAddress(ctx, address.ID))

	reopened, err := New(dir)
	require.NoError(t, err)

	selected, err := NewAddressRepository(reopened).SelectedAddressID(ctx)
	require.NoError(t, err)
	assert.Equal(t, address.ID, selected)
}

func TestAddressRepository_NoSelection(t *testing.T) {
	repo := NewAddressRepository(newTestStore(t))

	_, err := repo.SelectedAddressID(context.Background())

	require.ErrorIs(t, err, repository.ErrNoAddressSelected)
}

func TestAddressRepository_FindUnknownAddress(t *testing.T) {
	repo := NewAddressRepository(newTestStore(t))

	_, err := repo.FindAddressByID(context.Background(), uuid.New())

	require.ErrorIs(t, err, repository.ErrAddressNotFound)
}
