package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopfront/config"
	"shopfront/internal/delivery/http/response"
	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/service"
	"shopfront/internal/infra/auth"
	"shopfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, service.TokenService) {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{SecretKey: "test-secret", TokenTTL: time.Hour},
	}
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokens), tokens
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, usecase.Actor, bool) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var actor usecase.Actor
	var reached bool
	handler := mw(func(c echo.Context) error {
		actor, reached = ActorFromContext(c)

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, actor, reached
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate_MissingTokenGetsEnvelope(t *testing.T) {
	mw, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec, _, reached := invoke(t, mw.Authenticate, req)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", body.Error.Code)
}

func TestAuthMiddleware_Authenticate_ValidTokenSetsActor(t *testing.T) {
	mw, tokens := newAuthFixture(t)

	token, err := tokens.Issue(service.SessionClaims{Phone: "9876543210", Role: entity.RoleCustomer})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec, actor, reached := invoke(t, mw.Authenticate, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, reached)
	assert.Equal(t, "9876543210", actor.Phone)
	assert.Equal(t, entity.RoleCustomer, actor.Role)
	assert.Equal(t, "9876543210", actor.CartKey)
}

func TestAuthMiddleware_Identify_GuestKeepsHeaderCartKey(t *testing.T) {
	mw, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-Cart-Key", "browser-abc")
	rec, actor, reached := invoke(t, mw.Identify, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, reached)
	assert.Equal(t, entity.RoleGuest, actor.Role)
	assert.Empty(t, actor.Phone)
	assert.Equal(t, "browser-abc", actor.CartKey)
}

func TestAuthMiddleware_RequireRole_CustomerForbiddenWithEnvelope(t *testing.T) {
	mw, tokens := newAuthFixture(t)

	token, err := tokens.Issue(service.SessionClaims{Phone: "9876543210", Role: entity.RoleCustomer})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/operator/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Authenticate(mw.RequireRole(entity.RoleOperator)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
}
