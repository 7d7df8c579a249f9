package ports

import (
	"context"

	"github.com/peopleops/employee-api/internal/core/domain"
)

// EmployeeRepository is the system of record for employee rows.
// Implementations return domain.ErrEmployeeNotFound for unknown ids, never a
// raw driver error.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetAll(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}
