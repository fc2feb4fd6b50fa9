package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/freightline/tms-backend/internal/core/ports"
)

// IdentityKey is the echo context key holding the request's *domain.Identity.
// The value is nil for anonymous requests.
const IdentityKey = "identity"

// Identity resolves the bearer credential once per request and stores the
// result in the request context. It never rejects: a missing, malformed, or
// expired credential degrades to anonymous, and the authorization guard in
// the service layer decides whether that matters.
func Identity(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			c.Set(IdentityKey, auth.Resolve(c.Request().Context(), header))
			return next(c)
		}
	}
}
