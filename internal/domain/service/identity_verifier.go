package service

import "context"

// IdentityVerifier establishes a session identity from a phone number. The
// shipped implementation is a simulated OTP exchange; a real credential
// system can be substituted without touching the role router contract.
type IdentityVerifier interface {
	// RequestCode starts a verification for the phone number and returns the
	// challenge id. Delivery of the code itself is outside the core.
	RequestCode(ctx context.Context, phone string) (string, error)

	// VerifyCode checks a submitted code against the pending challenge.
	VerifyCode(ctx context.Context, phone, code string) (bool, error)
}

// CredentialHasher hashes and compares static credentials such as the admin PIN.
type CredentialHasher interface {
	// Hash returns the hash of a plaintext credential.
	Hash(plain string) (string, error)

	// Compare checks a plaintext credential against a stored hash.
	Compare(hashed, plain string) error
}
