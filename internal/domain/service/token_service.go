package service

import "shopfront/internal/domain/entity"

// SessionClaims is the identity carried by a session token.
type SessionClaims struct {
	Phone string
	Role  entity.Role
}

// TokenService issues and validates the bearer tokens that bind a session to
// its customer identity and resolved role.
type TokenService interface {
	// Issue creates a signed session token for the given identity.
	Issue(claims SessionClaims) (string, error)

	// Parse validates a token and returns the identity it carries.
	Parse(token string) (*SessionClaims, error)
}
