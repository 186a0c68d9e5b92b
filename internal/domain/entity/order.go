package entity

import (
	"time"

	"shopfront/internal/errors"
)

// OrderKind distinguishes the two order variants sharing the lifecycle.
type OrderKind string

const (
	// OrderKindProduct is a stationery order built from a cart snapshot.
	OrderKindProduct OrderKind = "product"
	// OrderKindService is a print-service job (photocopy, printout, scan, lamination).
	OrderKindService OrderKind = "service"
)

// PaymentMethod is how the customer chose to pay at checkout.
type PaymentMethod string

const (
	// PaymentCOD is cash on delivery; the order finalizes with no payment reference.
	PaymentCOD PaymentMethod = "cod"
	// PaymentOnline finalizes only after the payment collaborator supplies a reference.
	PaymentOnline PaymentMethod = "online"
)

// ServiceType is the kind of print-service job requested.
type ServiceType string

const (
	ServicePhotocopy  ServiceType = "photocopy"
	ServicePrintout   ServiceType = "printout"
	ServiceScan       ServiceType = "scan"
	ServiceLamination ServiceType = "lamination"
)

// IsValid checks if the service type is a known value.
func (t ServiceType) IsValid() bool {
	switch t {
	case ServicePhotocopy, ServicePrintout, ServiceScan, ServiceLamination:
		return true
	default:
		return false
	}
}

// InkMode selects black-and-white or color printing for a service job.
type InkMode string

const (
	InkBlackWhite InkMode = "bw"
	InkColor      InkMode = "color"
)

// IsValid checks if the ink mode is a known value.
func (m InkMode) IsValid() bool {
	return m == InkBlackWhite || m == InkColor
}

// OrderLine is a value copy of a cart line captured at checkout.
type OrderLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// LineTotal returns price multiplied by quantity for this line.
func (l OrderLine) LineTotal() int {
	return l.Price * l.Quantity
}

// ServiceDetails describes a print-service job. Present only on service orders.
type ServiceDetails struct {
	Type      ServiceType `json:"type"`
	Ink       InkMode     `json:"ink"`
	PaperSize string      `json:"paperSize"`
	Pages     int         `json:"pages"`
}

// ErrInvalidTransition is returned when a status change is attempted on an
// order that has already reached a terminal status.
var ErrInvalidTransition = errors.New("order is in a terminal status")

// Order is the immutable snapshot created at checkout. Status is the only
// field ever mutated after creation, and only through TransitionTo.
//
// Kind tags the variant: product orders carry Items and a Bill, service
// orders carry Service. Use NewProductOrder/NewServiceOrder so exactly one
// side is populated.
type Order struct {
	ID               string          `json:"id"`            // Pattern {ORD|SRV}-{6 digits}, unique across the order list.
	Kind             OrderKind       `json:"kind"`          //
	CustomerPhone    string          `json:"customerPhone"` // Session identity at checkout time.
	Items            []OrderLine     `json:"items,omitempty"`
	Service          *ServiceDetails `json:"service,omitempty"`
	Bill             Bill            `json:"bill"`    // Captured pricing breakdown; never recomputed.
	Address          Address         `json:"address"` // Delivery destination copied by value.
	PaymentMethod    PaymentMethod   `json:"paymentMethod"`
	PaymentReference string          `json:"paymentReference,omitempty"` // Set only for online payments.
	Status           OrderStatus     `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// NewProductOrder builds a pending product order from a cart snapshot.
func NewProductOrder(id, customerPhone string, items []OrderLine, bill Bill, address Address, method PaymentMethod, now time.Time) *Order {
	return &Order{
		ID:            id,
		Kind:          OrderKindProduct,
		CustomerPhone: customerPhone,
		Items:         items,
		Bill:          bill,
		Address:       address,
		PaymentMethod: method,
		Status:        StatusPending,
		CreatedAt:     now,
	}
}

// NewServiceOrder builds a pending print-service order.
func NewServiceOrder(id, customerPhone string, details ServiceDetails, bill Bill, address Address, method PaymentMethod, now time.Time) *Order {
	return &Order{
		ID:            id,
		Kind:          OrderKindService,
		CustomerPhone: customerPhone,
		Service:       &details,
		Bill:          bill,
		Address:       address,
		PaymentMethod: method,
		Status:        StatusPending,
		CreatedAt:     now,
	}
}

// TransitionTo moves the order to the target status. The operator may jump to
// any valid status from a non-terminal one; once the order is terminal every
// further transition fails with ErrInvalidTransition.
func (o *Order) TransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return errors.Errorf("unknown order status: %s", target)
	}
	if o.Status.IsTerminal() {
		return ErrInvalidTransition
	}

	o.Status = target

	return nil
}
