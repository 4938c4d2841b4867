package port

import (
	"context"

	"github.com/google/uuid"
)

// ReplicationScheduler schedules a background replication for a uid. Schedule
// never blocks the caller; a full queue drops the job.
type ReplicationScheduler interface {
	Schedule(uid uuid.UUID)
}

// EventPublisher is an interface to define a best-effort event publisher (nats, ...)
type EventPublisher interface {
	Publish(ctx context.Context, data []byte) error
	Close() error
}
