// Package whatsapp renders orders into the outbound messaging payload and
// its deep link. Composing is pure; opening the link is the client's job and
// fire-and-forget.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"shopfront/config"
	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/service"
)

type composer struct {
	shopNumber string
}

// NewComposer creates the order notifier for the configured shop number.
func NewComposer(cfg *config.Config) service.OrderNotifier {
	number := ""
	if cfg.Shop != nil {
		number = cfg.Shop.WhatsAppNumber
	}

	return &composer{shopNumber: number}
}

// Compose renders the plain-text message for an order. The section order is
// fixed: header, phone, total, payment, address, then items or job details.
func (c *composer) Compose(order *entity.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*NEW ORDER: %s*\n", order.ID)
	fmt.Fprintf(&b, "Phone: %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "Total: %d\n", order.Bill.GrandTotal)
	fmt.Fprintf(&b, "Payment: %s\n", strings.ToUpper(string(order.PaymentMethod)))
	fmt.Fprintf(&b, "Address: %s\n", order.Address.FullAddress)

	if order.Kind == entity.OrderKindService && order.Service != nil {
		fmt.Fprintf(&b, "Service: %s\n", order.Service.Type)
		fmt.Fprintf(&b, "Ink: %s\n", order.Service.Ink)
		fmt.Fprintf(&b, "Pages: %d\n", order.Service.Pages)

		return b.String()
	}

	b.WriteString("Items:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s x%d\n", item.Name, item.Quantity)
	}

	return b.String()
}

// DeepLink returns the wa.me link carrying the URL-encoded message.
func (c *composer) DeepLink(order *entity.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", c.shopNumber, url.QueryEscape(c.Compose(order)))
}
