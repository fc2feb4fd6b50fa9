package ports

import (
	"context"

	"github.com/freightline/tms-backend/internal/core/domain"
)

// UserRepository resolves stored account records for authentication.
type UserRepository interface {
	// FindByUsername returns the user or ErrInvalidCredentials.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID returns the user or ErrInvalidCredentials. Used when resolving
	// a credential's subject back to an account.
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
