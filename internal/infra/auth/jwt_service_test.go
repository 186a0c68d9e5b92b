package auth

import (
	"testing"
	"time"

	"shopfront/config"
	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authConfig(secret string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			SecretKey: secret,
			TokenTTL:  time.Hour,
		},
	}
}

func TestJWTService_IssueParseRoundTrip(t *testing.T) {
	svc, err := NewJWTService(authConfig("test-secret"))
	require.NoError(t, err)

	token, err := svc.Issue(service.SessionClaims{Phone: "9876543210", Role: entity.RoleCustomer})
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", claims.Phone)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
}

func TestJWTService_ParseRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(authConfig("secret-a"))
	require.NoError(t, err)
	parser, err := NewJWTService(authConfig("secret-b"))
	require.NoError(t, err)

	token, err := issuer.Issue(service.SessionClaims{Phone: "9876543210", Role: entity.RoleCustomer})
	require.NoError(t, err)

	_, err = parser.Parse(token)
	require.Error(t, err)
}

func TestJWTService_ParseRejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(authConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.Parse("not-a-token")
	require.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	cfg := authConfig("test-secret")
	cfg.Auth.TokenTTL = -time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.Issue(service.SessionClaims{Phone: "9876543210", Role: entity.RoleCustomer})
	require.NoError(t, err)

	_, err = svc.Parse(token)
	require.Error(t, err)
}
