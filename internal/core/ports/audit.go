package ports

import (
	"context"

	"github.com/peopleops/employee-api/internal/core/domain"
)

// AuditRecorder persists audit events. Implementations are called from the
// dispatcher workers, not from request handlers.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink accepts events for asynchronous recording. Enqueueing must be
// cheap enough to call on the request path.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}
