package entity

// Role is the capability set resolved for the current session.
type Role string

const (
	// RoleGuest is a session with no established identity; browse-only.
	RoleGuest Role = "guest"
	// RoleCustomer is any identified session that is not the operator.
	RoleCustomer Role = "customer"
	// RoleOperator is the single privileged role that may mutate order status,
	// view the unfiltered order list and manage the catalog.
	RoleOperator Role = "operator"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleCustomer, RoleOperator:
		return true
	default:
		return false
	}
}

// CanPlaceOrders reports whether the role is allowed to check out.
func (r Role) CanPlaceOrders() bool {
	return r == RoleCustomer || r == RoleOperator
}

// ResolveRole maps a session identity to its role: operator on an exact match
// with the configured operator phone, customer for any other non-empty
// identity, guest otherwise.
func ResolveRole(phone, operatorPhone string) Role {
	switch {
	case phone == "":
		return RoleGuest
	case operatorPhone != "" && phone == operatorPhone:
		return RoleOperator
	default:
		return RoleCustomer
	}
}
