package payment

import (
	"context"
	"log/slog"

	"shopfront/internal/domain/service"

	"github.com/google/uuid"
)

// localGateway issues intent ids locally for development, where the payment
// widget runs entirely on the client and no backend is available.
type localGateway struct {
	currency string
	logger   *slog.Logger
}

// NewLocalGateway creates the offline gateway.
func NewLocalGateway(currency string, logger *slog.Logger) service.PaymentGateway {
	return &localGateway{currency: currency, logger: logger}
}

// CreateIntent mints a local intent id for the requested amount.
func (g *localGateway) CreateIntent(ctx context.Context, amountMinor int, contact string) (*service.PaymentIntent, error) {
	intent := &service.PaymentIntent{
		ID:          "pi_" + uuid.NewString(),
		AmountMinor: amountMinor,
		Currency:    g.currency,
		Contact:     contact,
	}

	g.logger.Info("[LocalPayment] intent created",
		slog.String("intentId", intent.ID),
		slog.Int("amountMinor", amountMinor),
	)

	return intent, nil
}
