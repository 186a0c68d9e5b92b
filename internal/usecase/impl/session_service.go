package impl

import (
	"context"
	"log/slog"
	"unicode"

	"shopfront/config"
	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/service"
	"shopfront/internal/errors"
	"shopfront/internal/usecase"
)

// phoneDigits is the exact digit count accepted for a customer phone number.
const phoneDigits = 10

type sessionService struct {
	verifier service.IdentityVerifier
	tokens   service.TokenService
	hasher   service.CredentialHasher
	cfg      *config.Config
	logger   *slog.Logger
	pinHash  string
}

// NewSessionService creates a new session service instance. A provisioned
// adminPinHash wins; otherwise the plaintext adminPin is hashed once here.
func NewSessionService(
	verifier service.IdentityVerifier,
	tokens service.TokenService,
	hasher service.CredentialHasher,
	cfg *config.Config,
	logger *slog.Logger,
) (usecase.SessionUsecase, error) {
	pinHash := ""
	if cfg.Auth != nil {
		pinHash = cfg.Auth.AdminPinHash
		if pinHash == "" && cfg.Auth.AdminPin != "" {
			hashed, err := hasher.Hash(cfg.Auth.AdminPin)
			if err != nil {
				return nil, errors.Wrap(err, "failed to hash admin pin")
			}
			pinHash = hashed
		}
	}

	return &sessionService{
		verifier: verifier,
		tokens:   tokens,
		hasher:   hasher,
		cfg:      cfg,
		logger:   logger,
		pinHash:  pinHash,
	}, nil
}

// RequestOTP starts phone verification for a well-formed phone number.
func (s *sessionService) RequestOTP(ctx context.Context, phone string) (*usecase.OTPChallenge, error) {
	if !validPhone(phone) {
		return nil, domainerrors.ErrInvalidPhone
	}

	challengeID, err := s.verifier.RequestCode(ctx, phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to request verification code")
	}

	return &usecase.OTPChallenge{ChallengeID: challengeID, Phone: phone}, nil
}

// VerifyOTP completes verification and issues the session token carrying the
// resolved role.
func (s *sessionService) VerifyOTP(ctx context.Context, phone, code string) (*usecase.SessionOutput, error) {
	if !validPhone(phone) {
		return nil, domainerrors.ErrInvalidPhone
	}

	ok, err := s.verifier.VerifyCode(ctx, phone, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify code")
	}
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials
	}

	role := entity.ResolveRole(phone, s.operatorPhone())

	token, err := s.tokens.Issue(service.SessionClaims{Phone: phone, Role: role})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	s.logger.Info("session established", slog.String("role", role.String()))

	return &usecase.SessionOutput{Token: token, Phone: phone, Role: role}, nil
}

// LoginWithPin is the alternate operator entry path: a static 4-digit PIN
// compared against the configured bcrypt hash.
func (s *sessionService) LoginWithPin(ctx context.Context, pin string) (*usecase.SessionOutput, error) {
	if s.pinHash == "" {
		return nil, domainerrors.ErrInvalidPin
	}

	if err := s.hasher.Compare(s.pinHash, pin); err != nil {
		return nil, domainerrors.ErrInvalidPin
	}

	phone := s.operatorPhone()
	token, err := s.tokens.Issue(service.SessionClaims{Phone: phone, Role: entity.RoleOperator})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	s.logger.Info("operator session established via PIN")

	return &usecase.SessionOutput{Token: token, Phone: phone, Role: entity.RoleOperator}, nil
}

func (s *sessionService) operatorPhone() string {
	if s.cfg.Auth == nil {
		return ""
	}

	return s.cfg.Auth.OperatorPhone
}

// validPhone accepts exactly ten digits.
func validPhone(phone string) bool {
	if len(phone) != phoneDigits {
		return false
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
