package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"shopfront/config"
	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/domain/service"
	"shopfront/internal/errors"
	"shopfront/internal/usecase"

	"github.com/google/uuid"
)

// maxIDAttempts bounds the retry loop for the random order-id suffix.
const maxIDAttempts = 32

// pendingCheckout holds everything needed to finalize an online order once
// the payment collaborator's reference arrives. Nothing is persisted and the
// cart is left untouched until confirmation; an abandoned session simply
// stays here until the process exits.
type pendingCheckout struct {
	actorPhone string
	cartKey    string
	kind       entity.OrderKind
	items      []entity.OrderLine
	details    *entity.ServiceDetails
	bill       entity.Bill
	address    entity.Address
	intent     *service.PaymentIntent
	createdAt  time.Time
}

type checkoutService struct {
	cartRepo    repository.CartRepository
	addressRepo repository.AddressRepository
	orderRepo   repository.OrderRepository
	pricing     usecase.PricingUsecase
	gateway     service.PaymentGateway
	notifier    service.OrderNotifier
	qr          service.QRCodeService
	cfg         *config.Config
	logger      *slog.Logger

	mu      sync.Mutex
	pending map[uuid.UUID]*pendingCheckout
}

// NewCheckoutService creates a new checkout service instance.
func NewCheckoutService(
	cartRepo repository.CartRepository,
	addressRepo repository.AddressRepository,
	orderRepo repository.OrderRepository,
	pricing usecase.PricingUsecase,
	gateway service.PaymentGateway,
	notifier service.OrderNotifier,
	qr service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
		pricing:     pricing,
		gateway:     gateway,
		notifier:    notifier,
		qr:          qr,
		cfg:         cfg,
		logger:      logger,
		pending:     make(map[uuid.UUID]*pendingCheckout),
	}
}

// PlaceOrder checks out the actor's cart.
func (s *checkoutService) PlaceOrder(ctx context.Context, actor usecase.Actor, input *usecase.PlaceOrderInput) (*usecase.CheckoutOutput, error) {
	address, err := s.checkoutPreconditions(ctx, actor)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetCart(ctx, actor.CartKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	bill := s.pricing.Quote(cart)
	draft := &pendingCheckout{
		actorPhone: actor.Phone,
		cartKey:    actor.CartKey,
		kind:       entity.OrderKindProduct,
		items:      cart.Snapshot(),
		bill:       bill,
		address:    *address,
		createdAt:  time.Now(),
	}

	if input.PaymentMethod == entity.PaymentOnline {
		return s.beginOnlinePayment(ctx, draft)
	}

	return s.finalize(ctx, draft, entity.PaymentCOD, "")
}

// PlaceServiceOrder checks out a print-service job. The cart is not involved
// and is left untouched.
func (s *checkoutService) PlaceServiceOrder(ctx context.Context, actor usecase.Actor, input *usecase.ServiceOrderInput) (*usecase.CheckoutOutput, error) {
	address, err := s.checkoutPreconditions(ctx, actor)
	if err != nil {
		return nil, err
	}

	if !input.Type.IsValid() || !input.Ink.IsValid() || input.Pages < 1 {
		return nil, domainerrors.ErrValidationFailed
	}

	details := entity.ServiceDetails{
		Type:      input.Type,
		Ink:       input.Ink,
		PaperSize: input.PaperSize,
		Pages:     input.Pages,
	}

	draft := &pendingCheckout{
		actorPhone: actor.Phone,
		cartKey:    actor.CartKey,
		kind:       entity.OrderKindService,
		details:    &details,
		bill:       s.pricing.QuoteService(details),
		address:    *address,
		createdAt:  time.Now(),
	}

	if input.PaymentMethod == entity.PaymentOnline {
		return s.beginOnlinePayment(ctx, draft)
	}

	return s.finalize(ctx, draft, entity.PaymentCOD, "")
}

// ConfirmPayment finalizes the order held by a pending payment session.
func (s *checkoutService) ConfirmPayment(ctx context.Context, actor usecase.Actor, sessionID uuid.UUID, reference string) (*usecase.CheckoutOutput, error) {
	if reference == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment reference is required")
	}

	s.mu.Lock()
	draft, ok := s.pending[sessionID]
	if ok && draft.actorPhone != actor.Phone {
		ok = false
	}
	if ok {
		delete(s.pending, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return nil, domainerrors.ErrPaymentSessionNotFound
	}

	return s.finalize(ctx, draft, entity.PaymentOnline, reference)
}

// checkoutPreconditions enforces identity and address selection before any
// order is created.
func (s *checkoutService) checkoutPreconditions(ctx context.Context, actor usecase.Actor) (*entity.Address, error) {
	if actor.Phone == "" || !actor.Role.CanPlaceOrders() {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	selectedID, err := s.addressRepo.SelectedAddressID(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoAddressSelected) {
			return nil, domainerrors.ErrAddressRequired
		}

		return nil, errors.Wrap(err, "failed to read selected address")
	}

	address, err := s.addressRepo.FindAddressByID(ctx, selectedID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressRequired
		}

		return nil, errors.Wrap(err, "failed to find selected address")
	}

	if address.FullAddress == "" {
		return nil, domainerrors.ErrAddressRequired
	}

	return address, nil
}

// beginOnlinePayment registers a payment intent with the collaborator and
// parks the checkout until the reference arrives. The cart stays as it is so
// the customer can retry after abandoning the payment UI.
func (s *checkoutService) beginOnlinePayment(ctx context.Context, draft *pendingCheckout) (*usecase.CheckoutOutput, error) {
	amountMinor := draft.bill.GrandTotal * 100

	intent, err := s.gateway.CreateIntent(ctx, amountMinor, draft.actorPhone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}
	draft.intent = intent

	sessionID := uuid.New()
	s.mu.Lock()
	s.pending[sessionID] = draft
	s.mu.Unlock()

	s.logger.Info("payment session opened",
		slog.String("sessionId", sessionID.String()),
		slog.Int("amountMinor", amountMinor),
	)

	return &usecase.CheckoutOutput{
		PaymentSession: &usecase.PaymentSessionView{
			SessionID:   sessionID,
			IntentID:    intent.ID,
			AmountMinor: intent.AmountMinor,
			Currency:    intent.Currency,
		},
	}, nil
}

// finalize creates the immutable order record, appends it to the order list,
// clears the cart for product orders and renders the outbound notification.
func (s *checkoutService) finalize(ctx context.Context, draft *pendingCheckout, method entity.PaymentMethod, reference string) (*usecase.CheckoutOutput, error) {
	order, err := s.appendWithFreshID(ctx, draft, method, reference)
	if err != nil {
		return nil, err
	}

	if draft.kind == entity.OrderKindProduct {
		if err := s.cartRepo.ClearCart(ctx, draft.cartKey); err != nil {
			return nil, errors.Wrap(err, "failed to clear cart")
		}
	}

	message := s.notifier.Compose(order)
	deepLink := s.notifier.DeepLink(order)

	qrPNG, err := s.qr.EncodeLink(deepLink)
	if err != nil {
		// The QR is a convenience; the deep link alone is enough.
		s.logger.Warn("failed to encode order QR", slog.String("orderId", order.ID), slog.Any("error", err))
		qrPNG = nil
	}

	s.logger.Info("order placed",
		slog.String("orderId", order.ID),
		slog.String("kind", string(order.Kind)),
		slog.Int("grandTotal", order.Bill.GrandTotal),
	)

	return &usecase.CheckoutOutput{
		Order:    order,
		Message:  message,
		DeepLink: deepLink,
		QRCode:   qrPNG,
	}, nil
}

// appendWithFreshID generates {prefix}-{6 digits} ids until the append
// succeeds, so a random collision never surfaces as a duplicate.
func (s *checkoutService) appendWithFreshID(ctx context.Context, draft *pendingCheckout, method entity.PaymentMethod, reference string) (*entity.Order, error) {
	for range maxIDAttempts {
		id := generateOrderID(draft.kind)

		var order *entity.Order
		if draft.kind == entity.OrderKindService {
			order = entity.NewServiceOrder(id, draft.actorPhone, *draft.details, draft.bill, draft.address, method, time.Now())
		} else {
			order = entity.NewProductOrder(id, draft.actorPhone, draft.items, draft.bill, draft.address, method, time.Now())
		}
		// The reference must be on the record before it is written; the
		// snapshot on disk is the source of truth for every later read.
		order.PaymentReference = reference

		err := s.orderRepo.AppendOrder(ctx, order)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, repository.ErrDuplicateOrderID) {
			return nil, errors.Wrap(err, "failed to append order")
		}
	}

	return nil, errors.New("exhausted order id attempts")
}

// generateOrderID builds an id of the form ORD-123456 or SRV-123456.
func generateOrderID(kind entity.OrderKind) string {
	prefix := "ORD"
	if kind == entity.OrderKindService {
		prefix = "SRV"
	}

	return fmt.Sprintf("%s-%06d", prefix, rand.IntN(1000000))
}
