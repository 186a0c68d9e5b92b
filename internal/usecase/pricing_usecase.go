package usecase

import "shopfront/internal/domain/entity"

// PricingUsecase computes bills from cart snapshots and service job details.
// Both operations are pure: same input, same bill.
type PricingUsecase interface {
	// Quote prices a cart snapshot: subtotal, discount, delivery fee, grand total.
	Quote(cart *entity.Cart) entity.Bill

	// QuoteService prices a print-service job from its per-page rates.
	QuoteService(details entity.ServiceDetails) entity.Bill
}
