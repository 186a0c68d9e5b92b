package middleware

import (
	"strings"

	"shopfront/internal/delivery/http/response"
	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/service"
	"shopfront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	actorContextKey = "actor"

	// cartKeyHeader lets an unauthenticated browser keep one cart across
	// requests. Identified callers always use their phone as the cart key.
	cartKeyHeader = "X-Cart-Key"

	anonymousCartKey = "guest"
)

// AuthMiddleware resolves the caller's identity from the session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and rejects unidentified callers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.parseBearer(c)
		if !ok {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Invalid or missing bearer token")
		}

		c.Set(actorContextKey, usecase.Actor{
			Phone:   claims.Phone,
			Role:    claims.Role,
			CartKey: claims.Phone,
		})

		return next(c)
	}
}

// Identify resolves the caller when a token is present but lets guests
// through. Guests get a cart key from the request header so their cart
// survives between calls.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, ok := m.parseBearer(c); ok {
			c.Set(actorContextKey, usecase.Actor{
				Phone:   claims.Phone,
				Role:    claims.Role,
				CartKey: claims.Phone,
			})

			return next(c)
		}

		cartKey := c.Request().Header.Get(cartKeyHeader)
		if cartKey == "" {
			cartKey = anonymousCartKey
		}
		c.Set(actorContextKey, usecase.Guest(cartKey))

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFromContext(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity missing")
			}

			if actor.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+string(requiredRole)+"' role")
			}

			return next(c)
		}
	}
}

// ActorFromContext returns the caller identity set by the auth middleware.
func ActorFromContext(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(usecase.Actor)

	return actor, ok
}

func (m *AuthMiddleware) parseBearer(c echo.Context) (*service.SessionClaims, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, false
	}

	claims, err := m.tokenSvc.Parse(tokenString)
	if err != nil {
		return nil, false
	}

	return claims, true
}
