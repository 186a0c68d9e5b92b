package handler

import (
	"shopfront/internal/delivery/http/middleware"
	"shopfront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// mustActor returns the identity resolved by the auth middleware. Routes
// without any auth middleware fall back to an anonymous guest.
func mustActor(c echo.Context) usecase.Actor {
	if actor, ok := middleware.ActorFromContext(c); ok {
		return actor
	}

	return usecase.Guest("guest")
}
