package domain

// Operation enumerates the employee-directory actions subject to
// authorization.
type Operation string

const (
	OpListEmployees  Operation = "list_employees"
	OpReadEmployee   Operation = "read_employee"
	OpCreateEmployee Operation = "create_employee"
	OpUpdateEmployee Operation = "update_employee"
	OpDeleteEmployee Operation = "delete_employee"
)

// CanPerform is the authorization policy: a pure decision over
// (operation, role, requester, target). Administrators may do everything;
// employees may read and update their own record only. requesterEmployeeID
// and targetEmployeeID are employee ids, so ownership is direct equality.
func CanPerform(op Operation, role Role, requesterEmployeeID, targetEmployeeID string) bool {
	if role == RoleAdministrator {
		return true
	}
	if role != RoleEmployee {
		return false
	}
	switch op {
	case OpReadEmployee, OpUpdateEmployee:
		return requesterEmployeeID != "" && requesterEmployeeID == targetEmployeeID
	}
	return false
}
