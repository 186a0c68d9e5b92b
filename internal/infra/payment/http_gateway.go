package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"shopfront/internal/domain/service"
	"shopfront/internal/errors"
)

// httpGateway registers payment intents with a widget backend over plain
// HTTP. The widget drives the actual payment UI; the core never polls it.
type httpGateway struct {
	endpoint   string
	currency   string
	httpClient *http.Client
	logger     *slog.Logger
}

type intentRequest struct {
	AmountMinor int    `json:"amount"`
	Currency    string `json:"currency"`
	Contact     string `json:"contact"`
}

type intentResponse struct {
	ID string `json:"id"`
}

// NewHTTPGateway creates a gateway posting to the configured widget endpoint.
func NewHTTPGateway(endpoint, currency string, logger *slog.Logger) service.PaymentGateway {
	return &httpGateway{
		endpoint: endpoint,
		currency: currency,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// CreateIntent registers a payment of amountMinor minor units.
func (g *httpGateway) CreateIntent(ctx context.Context, amountMinor int, contact string) (*service.PaymentIntent, error) {
	body, err := json.Marshal(intentRequest{
		AmountMinor: amountMinor,
		Currency:    g.currency,
		Contact:     contact,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("payment widget returned non-success status: %d", resp.StatusCode)
	}

	var out intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.WithStack(err)
	}

	g.logger.Info("payment intent created",
		slog.String("intentId", out.ID),
		slog.Int("amountMinor", amountMinor),
	)

	return &service.PaymentIntent{
		ID:          out.ID,
		AmountMinor: amountMinor,
		Currency:    g.currency,
		Contact:     contact,
	}, nil
}
