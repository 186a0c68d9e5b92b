package usecase

import (
	"context"

	"shopfront/internal/domain/entity"
)

// OTPChallenge acknowledges a requested verification code.
type OTPChallenge struct {
	ChallengeID string `json:"challengeId"`
	Phone       string `json:"phone"`
}

// SessionOutput is an established session: a bearer token plus the resolved role.
type SessionOutput struct {
	Token string      `json:"token"`
	Phone string      `json:"phone"`
	Role  entity.Role `json:"role"`
}

// SessionUsecase establishes session identity. Identity is a bare
// phone-number/OTP simulation; its only effect is attaching a customer
// identifier (and role) to the session token.
type SessionUsecase interface {
	// RequestOTP starts phone verification. The phone must be exactly 10 digits.
	RequestOTP(ctx context.Context, phone string) (*OTPChallenge, error)

	// VerifyOTP completes verification and issues a session token.
	VerifyOTP(ctx context.Context, phone, code string) (*SessionOutput, error)

	// LoginWithPin is the alternate operator entry path gated by the static
	// 4-digit admin PIN.
	LoginWithPin(ctx context.Context, pin string) (*SessionOutput, error)
}
