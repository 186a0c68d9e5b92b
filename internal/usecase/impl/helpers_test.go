package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"shopfront/config"
	"shopfront/internal/domain/repository"
	"shopfront/internal/infra/localstore"

	"github.com/stretchr/testify/require"
)

const (
	testOperatorPhone = "9918800690"
	testCustomerPhone = "9876543210"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Shop: &config.ShopConfig{
			Name:           "Muskan Stationers",
			City:           "Gonda",
			Currency:       "INR",
			WhatsAppNumber: "919794725337",
		},
		Pricing: &config.PricingConfig{
			DiscountRate:          0.05,
			FreeDeliveryThreshold: 99,
			DeliveryFee:           29,
			BWPageRate:            2,
			ColorPageRate:         10,
		},
		Auth: &config.AuthConfig{
			OperatorPhone: testOperatorPhone,
			SecretKey:     "test-secret",
			TokenTTL:      time.Hour,
			OTPTTL:        5 * time.Minute,
		},
		Payment: &config.PaymentConfig{Provider: "local", Currency: "INR"},
	}

	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStore(t *testing.T) *localstore.Store {
	t.Helper()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	return store
}

func testRepos(t *testing.T) (repository.OrderRepository, repository.AddressRepository, repository.CatalogRepository) {
	t.Helper()

	store := testStore(t)

	return localstore.NewOrderRepository(store),
		localstore.NewAddressRepository(store),
		localstore.NewCatalogRepository(store)
}
