package ports

import (
	"context"
	"time"

	"github.com/peopleops/employee-api/internal/core/domain"
)

// SessionStore owns all session records. No other component reads or writes
// session keys directly.
type SessionStore interface {
	// Create stores the session under token with the given TTL, overwriting
	// any existing record at that token.
	Create(ctx context.Context, token string, session domain.Session, ttl time.Duration) error
	// Get returns (nil, nil) when the token is unknown or expired; absence is
	// part of the contract, not an error.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Delete is idempotent; deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
