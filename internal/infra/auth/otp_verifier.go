package auth

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"shopfront/config"
	"shopfront/internal/domain/service"
	"shopfront/internal/errors"

	"github.com/google/uuid"
)

// otpVerifier simulates the OTP exchange: codes are generated locally and
// logged instead of being sent over SMS. The IdentityVerifier port lets a
// real delivery channel replace this without touching the session usecase.
type otpVerifier struct {
	ttl    time.Duration
	logger *slog.Logger

	mu    sync.Mutex
	codes map[string]otpChallenge
}

type otpChallenge struct {
	code      string
	expiresAt time.Time
}

// NewOTPVerifier creates the simulated OTP verifier.
func NewOTPVerifier(cfg *config.Config, logger *slog.Logger) service.IdentityVerifier {
	ttl := 5 * time.Minute
	if cfg.Auth != nil && cfg.Auth.OTPTTL > 0 {
		ttl = cfg.Auth.OTPTTL
	}

	return &otpVerifier{
		ttl:    ttl,
		logger: logger,
		codes:  make(map[string]otpChallenge),
	}
}

// RequestCode generates a six-digit code for the phone number. Only the most
// recent code per phone stays valid.
func (v *otpVerifier) RequestCode(ctx context.Context, phone string) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", err
	}

	v.mu.Lock()
	v.codes[phone] = otpChallenge{code: code, expiresAt: time.Now().Add(v.ttl)}
	v.mu.Unlock()

	// Simulation: the code is logged, not delivered.
	v.logger.Info("verification code issued", slog.String("phone", phone), slog.String("code", code))

	return uuid.NewString(), nil
}

// VerifyCode checks a submitted code and consumes the challenge on success.
func (v *otpVerifier) VerifyCode(ctx context.Context, phone, code string) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	challenge, ok := v.codes[phone]
	if !ok || time.Now().After(challenge.expiresAt) || challenge.code != code {
		return false, nil
	}

	delete(v.codes, phone)

	return true, nil
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate verification code")
	}

	digits := n.String()
	for len(digits) < 6 {
		digits = "0" + digits
	}

	return digits, nil
}
