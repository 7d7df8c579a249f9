package ports

import (
	"context"

	"github.com/peopleops/employee-api/internal/core/domain"
)

// EmployeeCache is the advisory read-through cache in front of the employee
// repository. Absence of an entry never blocks correctness; implementations
// return (nil, nil) on miss and (nil, err) only for infrastructure failures,
// which callers degrade around.
type EmployeeCache interface {
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	SetEmployee(ctx context.Context, e *domain.Employee) error
	GetList(ctx context.Context) ([]domain.Employee, error)
	SetList(ctx context.Context, employees []domain.Employee) error
	// InvalidateList deletes the collection key.
	InvalidateList(ctx context.Context) error
	// InvalidateEmployee deletes one per-employee key.
	InvalidateEmployee(ctx context.Context, id string) error
}
