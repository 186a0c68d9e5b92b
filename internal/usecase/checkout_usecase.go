package usecase

import (
	"context"

	"shopfront/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput carries the checkout choices for a product order.
type PlaceOrderInput struct {
	PaymentMethod entity.PaymentMethod `json:"paymentMethod" validate:"required,oneof=cod online"`
}

// ServiceOrderInput carries a print-service job request.
type ServiceOrderInput struct {
	Type          entity.ServiceType   `json:"type" validate:"required"`
	Ink           entity.InkMode       `json:"ink" validate:"required"`
	PaperSize     string               `json:"paperSize"`
	Pages         int                  `json:"pages" validate:"required,min=1"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod" validate:"required,oneof=cod online"`
}

// PaymentSessionView is returned when an online checkout is waiting for the
// payment collaborator's reference. The session expires silently if the
// customer abandons the payment UI; nothing is persisted until confirmation.
type PaymentSessionView struct {
	SessionID   uuid.UUID `json:"sessionId"`
	IntentID    string    `json:"intentId"`
	AmountMinor int       `json:"amountMinor"`
	Currency    string    `json:"currency"`
}

// CheckoutOutput is the result of a finalized checkout step. Exactly one of
// Order or PaymentSession is set: Order when the order was created, and
// PaymentSession when an online payment is still pending.
type CheckoutOutput struct {
	Order          *entity.Order       `json:"order,omitempty"`
	Message        string              `json:"message,omitempty"`  // Outbound notification payload.
	DeepLink       string              `json:"deepLink,omitempty"` // URL-encoded messaging link.
	QRCode         []byte              `json:"qrCode,omitempty"`   // PNG QR of the deep link.
	PaymentSession *PaymentSessionView `json:"paymentSession,omitempty"`
}

// CheckoutUsecase turns a cart (or a service request) into an immutable order.
type CheckoutUsecase interface {
	// PlaceOrder checks out the actor's cart. COD finalizes immediately;
	// online payment returns a pending payment session instead.
	PlaceOrder(ctx context.Context, actor Actor, input *PlaceOrderInput) (*CheckoutOutput, error)

	// PlaceServiceOrder checks out a print-service job.
	PlaceServiceOrder(ctx context.Context, actor Actor, input *ServiceOrderInput) (*CheckoutOutput, error)

	// ConfirmPayment finalizes the order held by a pending payment session
	// once the collaborator's callback supplies a payment reference.
	ConfirmPayment(ctx context.Context, actor Actor, sessionID uuid.UUID, reference string) (*CheckoutOutput, error)
}
