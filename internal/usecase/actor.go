// Package usecase defines the application-layer interfaces and their
// input/output types.
package usecase

import "shopfront/internal/domain/entity"

// Actor is the resolved identity of the caller for capability gating.
// A guest has an empty phone; the cart key is the session subject used for
// cart ownership (phone when identified, an anonymous key otherwise).
type Actor struct {
	Phone   string
	Role    entity.Role
	CartKey string
}

// Guest returns an unidentified actor owning the given cart key.
func Guest(cartKey string) Actor {
	return Actor{Role: entity.RoleGuest, CartKey: cartKey}
}
