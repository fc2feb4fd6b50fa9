package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freightline/tms-backend/internal/api/metrics"
	"github.com/freightline/tms-backend/internal/core/domain"
	"github.com/freightline/tms-backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	ID          string               `json:"id"`
	Username    string               `json:"username"`
	Role        string               `json:"role"`
	Token       string               `json:"token"`
	Permissions domain.PermissionSet `json:"permissions"`
}

type meResponse struct {
	ID          string               `json:"id"`
	Username    string               `json:"username"`
	Role        string               `json:"role"`
	Permissions domain.PermissionSet `json:"permissions"`
}

// Login authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		ID:          result.ID,
		Username:    result.Username,
		Role:        result.Role,
		Token:       result.Token,
		Permissions: domain.PermissionsForRole(result.Role),
	})
}

// Me returns the caller's identity and capability set, or null when the
// request is anonymous.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity := ctxIdentity(c)
	if identity == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, meResponse{
		ID:          identity.ID,
		Username:    identity.Username,
		Role:        identity.Role,
		Permissions: domain.PermissionsForRole(identity.Role),
	})
}

// Permissions returns the capability set for a role. Unknown roles yield the
// all-false set.
//
// @Summary      Capability set for a role
// @Tags         auth
// @Produce      json
// @Param        role  path  string  true  "Role name (ADMIN, EMPLOYEE)"
// @Success      200   {object}  domain.PermissionSet
// @Router       /v1/permissions/{role} [get]
func (h *AuthHandler) Permissions(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.PermissionsForRole(c.Param("role")))
}
