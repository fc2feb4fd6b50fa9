package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/freightline/tms-backend/internal/api/middleware"
	"github.com/freightline/tms-backend/internal/core/domain"
)

// ctxIdentity returns the identity stored by the Identity middleware, or nil
// when the request is anonymous. Handlers pass it straight to the service
// layer; the guard there decides whether anonymity is acceptable.
func ctxIdentity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(middleware.IdentityKey).(*domain.Identity)
	return identity
}
