// Package service defines the ports for external collaborators the core
// depends on but does not own.
package service

import "context"

// PaymentIntent is the collaborator's handle for a requested payment. The
// reference that finalizes an order arrives later through the client's
// confirmation call, or never, if the customer abandons the payment UI.
type PaymentIntent struct {
	ID          string `json:"id"`
	AmountMinor int    `json:"amountMinor"` // Amount in minor currency units (grand total x 100).
	Currency    string `json:"currency"`
	Contact     string `json:"contact"` // Prefilled customer phone.
}

// PaymentGateway is the external payment widget: given an amount it yields an
// intent the client-side widget completes. The core never observes a failure
// beyond the confirmation simply not arriving.
type PaymentGateway interface {
	// CreateIntent registers a payment of amountMinor minor units for contact.
	CreateIntent(ctx context.Context, amountMinor int, contact string) (*PaymentIntent, error)
}
