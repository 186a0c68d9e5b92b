package entity

// OrderStatus is the fulfillment state of an order. Pending is the only entry
// point; Completed and Cancelled are terminal.
type OrderStatus string

const (
	// StatusPending is the initial status of every new order.
	StatusPending OrderStatus = "pending"
	// StatusProcessing indicates the shop has started preparing the order.
	StatusProcessing OrderStatus = "processing"
	// StatusOutForDelivery is the single in-transit tier.
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	// StatusCompleted is a terminal status; the order counts toward revenue.
	StatusCompleted OrderStatus = "completed"
	// StatusCancelled is a terminal status reachable from any non-terminal state.
	StatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusOutForDelivery, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted out of s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// DisplayName returns the human-readable alias for the status.
func (s OrderStatus) DisplayName() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusProcessing:
		return "Processing"
	case StatusOutForDelivery:
		return "Out for delivery"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}
