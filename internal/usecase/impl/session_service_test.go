package impl

import (
	"context"
	"testing"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier accepts a single fixed code for any phone number.
type stubVerifier struct {
	code string
}

func (v *stubVerifier) RequestCode(_ context.Context, _ string) (string, error) {
	return "challenge-1", nil
}

func (v *stubVerifier) VerifyCode(_ context.Context, _, code string) (bool, error) {
	return code == v.code, nil
}

func newSessionFixture(t *testing.T) *sessionService {
	t.Helper()

	cfg := testConfig()
	cfg.Auth.AdminPin = "1234"

	hasher := auth.NewBcryptHasher()
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	svc, err := NewSessionService(&stubVerifier{code: "123456"}, tokens, hasher, cfg, testLogger())
	require.NoError(t, err)

	return svc.(*sessionService)
}

func TestSessionService_RequestOTP_RejectsMalformedPhones(t *testing.T) {
	svc := newSessionFixture(t)
	ctx := context.Background()

	for _, phone := range []string{"", "12345", "98765432100", "98765abcde"} {
		_, err := svc.RequestOTP(ctx, phone)
		require.ErrorIs(t, err, domainerrors.ErrInvalidPhone, "phone %q", phone)
	}

	challenge, err := svc.RequestOTP(ctx, testCustomerPhone)
	require.NoError(t, err)
	assert.Equal(t, testCustomerPhone, challenge.Phone)
	assert.NotEmpty(t, challenge.ChallengeID)
}

func TestSessionService_VerifyOTP_IssuesCustomerSession(t *testing.T) {
	svc := newSessionFixture(t)

	output, err := svc.VerifyOTP(context.Background(), testCustomerPhone, "123456")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCustomer, output.Role)
	assert.Equal(t, testCustomerPhone, output.Phone)
	assert.NotEmpty(t, output.Token)
}

func TestSessionService_VerifyOTP_OperatorPhoneGetsOperatorRole(t *testing.T) {
	svc := newSessionFixture(t)

	output, err := svc.VerifyOTP(context.Background(), testOperatorPhone, "123456")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleOperator, output.Role)
}

func TestSessionService_VerifyOTP_WrongCode(t *testing.T) {
	svc := newSessionFixture(t)

	_, err := svc.VerifyOTP(context.Background(), testCustomerPhone, "000000")

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_LoginWithPin(t *testing.T) {
	svc := newSessionFixture(t)
	ctx := context.Background()

	output, err := svc.LoginWithPin(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperator, output.Role)
	assert.Equal(t, testOperatorPhone, output.Phone)

	_, err = svc.LoginWithPin(ctx, "9999")
	require.ErrorIs(t, err, domainerrors.ErrInvalidPin)
}

func TestSessionService_LoginWithPin_NoPinConfigured(t *testing.T) {
	svc := newSessionFixture(t)
	svc.pinHash = ""

	_, err := svc.LoginWithPin(context.Background(), "1234")

	require.ErrorIs(t, err, domainerrors.ErrInvalidPin)
}
