package service

import (
	"github.com/freightline/tms-backend/internal/core/domain"
)

// RequireRole allows the operation when the identity is present and its role
// is in the allowed set. Anonymous callers get ErrUnauthenticated; present
// identities with a disallowed role get ErrForbidden.
func RequireRole(identity *domain.Identity, allowedRoles ...string) error {
	if identity == nil {
		return domain.ErrUnauthenticated
	}
	for _, r := range allowedRoles {
		if identity.Role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}

// CheckCapability allows the operation when the identity's role grants the
// named capability in the permission table. Unknown roles resolve to an empty
// capability set, so they fail closed with ErrForbidden.
func CheckCapability(identity *domain.Identity, capability domain.Capability) error {
	if identity == nil {
		return domain.ErrUnauthenticated
	}
	if !domain.PermissionsForRole(identity.Role).Has(capability) {
		return domain.ErrForbidden
	}
	return nil
}
