package domain

// Session is the value stored behind an opaque session token: just enough to
// identify the principal on later requests. The token itself is the key and
// never appears inside the value.
type Session struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	Role       Role   `json:"role"`
}
