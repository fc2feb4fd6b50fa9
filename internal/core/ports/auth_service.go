package ports

import (
	"context"

	"github.com/freightline/tms-backend/internal/core/domain"
)

// LoginResult is returned on successful login.
type LoginResult struct {
	ID       string
	Username string
	Role     string
	Token    string
}

// AuthService issues and resolves credentials.
type AuthService interface {
	// Login verifies the username/password pair and issues a signed token,
	// or fails with ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Resolve turns a bearer credential into an identity. Every failure mode
	// (malformed, expired, bad signature, unknown subject) yields nil —
	// anonymous — rather than an error.
	Resolve(ctx context.Context, credential string) *domain.Identity
}
