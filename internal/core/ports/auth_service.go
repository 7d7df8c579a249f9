package ports

import (
	"context"

	"github.com/peopleops/employee-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials and returns a fresh opaque session token.
	// Unknown username and wrong password both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// Authenticate resolves a token to the session identity, or
	// domain.ErrAuthenticationRequired when the token is missing, unknown or
	// expired.
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
	// Logout is idempotent.
	Logout(ctx context.Context, token string) error
}
