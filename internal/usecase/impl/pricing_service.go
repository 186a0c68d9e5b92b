package impl

import (
	"math"

	"shopfront/config"
	"shopfront/internal/domain/entity"
	"shopfront/internal/usecase"
)

type pricingService struct {
	cfg *config.PricingConfig
}

// NewPricingService creates the pricing engine from the configured constants.
func NewPricingService(cfg *config.Config) usecase.PricingUsecase {
	pricing := cfg.Pricing
	if pricing == nil {
		pricing = &config.PricingConfig{
			DiscountRate:          0.05,
			FreeDeliveryThreshold: 99,
			DeliveryFee:           29,
			BWPageRate:            2,
			ColorPageRate:         10,
		}
	}

	return &pricingService{cfg: pricing}
}

// Quote prices a cart snapshot in fixed order: subtotal, discount, delivery
// fee, grand total. An empty cart yields an all-zero bill.
func (s *pricingService) Quote(cart *entity.Cart) entity.Bill {
	subtotal := cart.Subtotal()
	if subtotal == 0 {
		return entity.Bill{}
	}

	discount := int(math.Floor(float64(subtotal) * s.cfg.DiscountRate))
	if discount > subtotal {
		discount = subtotal
	}

	deliveryFee := s.cfg.DeliveryFee
	if subtotal > s.cfg.FreeDeliveryThreshold {
		deliveryFee = 0
	}

	return entity.Bill{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: deliveryFee,
		GrandTotal:  subtotal - discount + deliveryFee,
	}
}

// QuoteService prices a print job at the per-page rate for its ink mode.
// Service orders carry no discount or delivery fee.
func (s *pricingService) QuoteService(details entity.ServiceDetails) entity.Bill {
	rate := s.cfg.BWPageRate
	if details.Ink == entity.InkColor {
		rate = s.cfg.ColorPageRate
	}

	total := details.Pages * rate

	return entity.Bill{
		Subtotal:   total,
		GrandTotal: total,
	}
}
