package ports

import (
	"context"
	"time"

	"github.com/peopleops/employee-api/internal/core/domain"
)

// Identity is the authenticated requester, as attached to the request by the
// session gate.
type Identity struct {
	UserID     string
	EmployeeID string
	Role       domain.Role
}

// CreateEmployeeInput carries both the employee fields and the credentials of
// the user account created alongside it in the same logical operation.
type CreateEmployeeInput struct {
	FirstName   string
	LastName    string
	Position    string
	DateOfBirth time.Time
	Email       string
	Phone       string

	Username string
	Password string
	Role     domain.Role
}

type UpdateEmployeeInput struct {
	FirstName   string
	LastName    string
	Position    string
	DateOfBirth time.Time
	Email       string
	Phone       string
}

// EmployeeService exposes the policy-gated, cache-coherent employee
// operations.
type EmployeeService interface {
	List(ctx context.Context, requester Identity) ([]domain.Employee, error)
	Get(ctx context.Context, requester Identity, id string) (*domain.Employee, error)
	Create(ctx context.Context, requester Identity, input CreateEmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, requester Identity, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, requester Identity, id string) error
}
