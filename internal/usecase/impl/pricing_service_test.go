package impl

import (
	"testing"

	"shopfront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func cartWithSubtotal(price, quantity int) *entity.Cart {
	cart := &entity.Cart{}
	for range quantity {
		cart.AddItem(entity.Product{ID: "p", Name: "Item", Price: price})
	}

	return cart
}

func TestPricingService_Quote_BelowFreeDeliveryThreshold(t *testing.T) {
	pricing := NewPricingService(testConfig())

	// 95 earns a floored 5% discount of 4 and still pays delivery.
	bill := pricing.Quote(cartWithSubtotal(95, 1))

	assert.Equal(t, entity.Bill{Subtotal: 95, Discount: 4, DeliveryFee: 29, GrandTotal: 120}, bill)
}

func TestPricingService_Quote_AboveFreeDeliveryThreshold(t *testing.T) {
	pricing := NewPricingService(testConfig())

	bill := pricing.Quote(cartWithSubtotal(105, 1))

	assert.Equal(t, entity.Bill{Subtotal: 105, Discount: 5, DeliveryFee: 0, GrandTotal: 100}, bill)
}

func TestPricingService_Quote_AtThresholdStillPaysDelivery(t *testing.T) {
	pricing := NewPricingService(testConfig())

	// The threshold itself is not above it.
	bill := pricing.Quote(cartWithSubtotal(99, 1))

	assert.Equal(t, 29, bill.DeliveryFee)
}

func TestPricingService_Quote_EmptyCartIsAllZero(t *testing.T) {
	pricing := NewPricingService(testConfig())

	bill := pricing.Quote(&entity.Cart{})

	assert.Equal(t, entity.Bill{}, bill)
}

func TestPricingService_Quote_DiscountIsFloored(t *testing.T) {
	pricing := NewPricingService(testConfig())

	// 5% of 30 is 1.5, floored to 1.
	bill := pricing.Quote(cartWithSubtotal(30, 1))

	assert.Equal(t, 1, bill.Discount)
	assert.Equal(t, 58, bill.GrandTotal)
}

func TestPricingService_QuoteService_PerPageRates(t *testing.T) {
	pricing := NewPricingService(testConfig())

	bw := pricing.QuoteService(entity.ServiceDetails{Type: entity.ServicePhotocopy, Ink: entity.InkBlackWhite, Pages: 5})
	assert.Equal(t, entity.Bill{Subtotal: 10, GrandTotal: 10}, bw)

	color := pricing.QuoteService(entity.ServiceDetails{Type: entity.ServicePrintout, Ink: entity.InkColor, Pages: 3})
	assert.Equal(t, entity.Bill{Subtotal: 30, GrandTotal: 30}, color)
}
