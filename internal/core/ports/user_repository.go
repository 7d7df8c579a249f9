package ports

import (
	"context"

	"github.com/peopleops/employee-api/internal/core/domain"
)

// UserRepository defines the persistence contract for authentication users.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// HasAdministrator reports whether at least one Administrator user exists.
	// Used by startup seeding only.
	HasAdministrator(ctx context.Context) (bool, error)
	// DeleteByEmployeeID removes the user paired with an employee record.
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
