package service

import "shopfront/internal/domain/entity"

// OrderNotifier renders an order into the outbound message payload for the
// external messaging collaborator. Composing is pure and deterministic; the
// actual transmission (opening the deep link) happens outside the core and is
// fire-and-forget.
type OrderNotifier interface {
	// Compose renders the plain-text message for an order.
	Compose(order *entity.Order) string

	// DeepLink returns the URL-encoded messaging deep link carrying the message.
	DeepLink(order *entity.Order) string
}

// QRCodeService encodes a deep link as a scannable QR image.
type QRCodeService interface {
	// EncodeLink returns a PNG-encoded QR code for the given link.
	EncodeLink(link string) ([]byte, error)
}
