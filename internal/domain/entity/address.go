package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a named delivery destination saved by a customer.
// The address book is append-only: addresses are created once and never
// edited or deleted afterwards.
type Address struct {
	ID          uuid.UUID `json:"id"`          // Generated at creation time.
	Label       string    `json:"label"`       // A user-chosen label, e.g. "Home", "Office", "Other".
	FullAddress string    `json:"fullAddress"` // The full, human-readable street address. Required.
	Landmark    string    `json:"landmark,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
