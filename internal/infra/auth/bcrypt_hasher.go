package auth

import (
	"golang.org/x/crypto/bcrypt"

	"shopfront/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the CredentialHasher interface using bcrypt.
type bcryptHasher struct{}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher() service.CredentialHasher {
	return &bcryptHasher{}
}

// Hash generates a salted hash from a plaintext credential using bcrypt.
func (h *bcryptHasher) Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)

	return string(bytes), err
}

// Compare checks a plaintext credential against a bcrypt hash.
func (h *bcryptHasher) Compare(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
