package handler

import (
	"time"

	"github.com/peopleops/employee-api/internal/core/domain"
)

// --- Request / Response types ---

type createEmployeeRequest struct {
	FirstName   string    `json:"first_name"    validate:"required"`
	LastName    string    `json:"last_name"     validate:"required"`
	Position    string    `json:"position"      validate:"required"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required"`
	Email       string    `json:"email"         validate:"required,email"`
	Phone       string    `json:"phone"         validate:"required"`

	// Credentials for the user account created with the employee.
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=Administrator Employee"`
}

type updateEmployeeRequest struct {
	FirstName   string    `json:"first_name"    validate:"required"`
	LastName    string    `json:"last_name"     validate:"required"`
	Position    string    `json:"position"      validate:"required"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required"`
	Email       string    `json:"email"         validate:"required,email"`
	Phone       string    `json:"phone"         validate:"required"`
}

// employeeResponse is the transport projection of an employee record,
// intentionally separate from the domain type so the JSON contract is not
// coupled to internal changes.
type employeeResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Position    string    `json:"position"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
}

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Position:    e.Position,
		DateOfBirth: e.DateOfBirth,
		Email:       e.Email,
		Phone:       e.Phone,
	}
}

func toEmployeeResponses(employees []domain.Employee) []employeeResponse {
	out := make([]employeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, toEmployeeResponse(&employees[i]))
	}
	return out
}
