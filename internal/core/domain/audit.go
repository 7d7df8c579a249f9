package domain

import "time"

// AuditAction identifies what an audit event records.
type AuditAction string

const (
	AuditLogin          AuditAction = "login"
	AuditLogout         AuditAction = "logout"
	AuditEmployeeCreate AuditAction = "employee_create"
	AuditEmployeeUpdate AuditAction = "employee_update"
	AuditEmployeeDelete AuditAction = "employee_delete"
)

// AuditEvent is a best-effort trail entry. Events are persisted
// asynchronously; losing queued events on shutdown is accepted.
type AuditEvent struct {
	ID        string      `json:"id" bson:"_id"`
	Action    AuditAction `json:"action" bson:"action"`
	ActorID   string      `json:"actor_id" bson:"actor_id"`
	TargetID  string      `json:"target_id,omitempty" bson:"target_id,omitempty"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
}
