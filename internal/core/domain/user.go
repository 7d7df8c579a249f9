package domain

import "time"

// Role is the closed set of roles a user can hold. Anything else read from
// the data store is a data integrity error, not a third role.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleEmployee      Role = "Employee"
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdministrator, RoleEmployee:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models an authentication principal. Exactly one User exists per
// Employee; EmployeeID carries the 1:1 link.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	EmployeeID   string    `json:"employee_id"`
	CreatedAt    time.Time `json:"created_at"`
}
