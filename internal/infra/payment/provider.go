// Package payment implements the payment collaborator port. The collaborator
// is an external widget: the core only registers an intent for an amount and
// later receives (or never receives) a reference through the client.
package payment

import (
	"log/slog"

	"shopfront/config"
	"shopfront/internal/domain/service"
)

// NewPaymentGateway selects the gateway implementation from configuration:
// "http" posts intents to a widget endpoint, anything else uses the local
// offline gateway.
func NewPaymentGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	currency := "INR"
	if cfg.Payment != nil && cfg.Payment.Currency != "" {
		currency = cfg.Payment.Currency
	}

	if cfg.Payment != nil && cfg.Payment.Provider == "http" && cfg.Payment.Endpoint != "" {
		return NewHTTPGateway(cfg.Payment.Endpoint, currency, logger)
	}

	return NewLocalGateway(currency, logger)
}
