package domain

import "time"

// FileReplicatedEvent is published after a file has been mirrored to the
// cloud provider.
type FileReplicatedEvent struct {
	UID          string    `json:"uid"`
	ReplicatedAt time.Time `json:"replicated_at"`
}
