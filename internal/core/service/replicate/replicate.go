package replicate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrysvd/test-task/internal/core/domain"
	"github.com/dmitrysvd/test-task/internal/core/port"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// replicationTotal counts finished replication attempts by outcome.
var replicationTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "filesvc_replication_total",
		Help: "Finished cloud replication attempts by outcome",
	},
	[]string{"outcome"},
)

// Service mirrors stored blobs to the remote cloud provider.
type Service struct {
	repo      port.FileRepository
	blobStore port.BlobStore
	cloud     port.CloudStorage
	events    port.EventPublisher
	logger    *slog.Logger
}

// NewService creates a new replication service. events may be nil, in which
// case no replication events are published.
func NewService(repo port.FileRepository, blobStore port.BlobStore, cloud port.CloudStorage, events port.EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		blobStore: blobStore,
		cloud:     cloud,
		events:    events,
		logger:    logger,
	}
}

// Replicate transfers the blob for uid to the cloud provider and, on a
// confirmed transfer, flips the record's sync flag. Single-attempt policy:
// any failure is logged and ends the attempt; the flag stays false and
// nothing is retried. An already-synced uid is transferred again in full.
func (s *Service) Replicate(ctx context.Context, uid uuid.UUID) {
	s.logger.Info("cloud replication started", "uid", uid)

	content, err := s.blobStore.Open(uid)
	if err != nil {
		s.logger.Error("failed to open blob for replication", "uid", uid, "error", err)
		replicationTotal.WithLabelValues("failure").Inc()
		return
	}
	defer content.Close()

	if err := s.cloud.Upload(ctx, "/"+uid.String(), content); err != nil {
		s.logger.Error("failed to upload file to cloud", "uid", uid, "error", err)
		replicationTotal.WithLabelValues("failure").Inc()
		return
	}

	err = s.repo.MarkUploadedToCloud(ctx, uid)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		// Metadata vanished between upload and replication. Benign anomaly.
		s.logger.Warn("file metadata is missing", "uid", uid)
		replicationTotal.WithLabelValues("missing_metadata").Inc()
		return
	case err != nil:
		s.logger.Error("failed to mark file as uploaded to cloud", "uid", uid, "error", err)
		replicationTotal.WithLabelValues("failure").Inc()
		return
	}

	replicationTotal.WithLabelValues("success").Inc()
	s.logger.Info("file uploaded to cloud", "uid", uid)

	s.publishReplicated(ctx, uid)
}

// publishReplicated emits a best-effort notification; failures are only logged.
func (s *Service) publishReplicated(ctx context.Context, uid uuid.UUID) {
	if s.events == nil {
		return
	}

	data, err := json.Marshal(domain.FileReplicatedEvent{
		UID:          uid.String(),
		ReplicatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("failed to marshal replication event", "uid", uid, "error", err)
		return
	}

	if err := s.events.Publish(ctx, data); err != nil {
		s.logger.Error("failed to publish replication event", "uid", uid, "error", err)
	}
}
