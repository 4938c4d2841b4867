package replicate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrysvd/test-task/internal/config"
	"github.com/dmitrysvd/test-task/internal/core/port"

	"github.com/google/uuid"
)

// Worker is the bounded replication queue. Uploads enqueue uids through
// Schedule; a fixed pool of goroutines consumes them. Jobs run on a
// background context detached from the HTTP request lifecycle and are never
// cancelled once started.
type Worker struct {
	service *Service
	jobs    chan uuid.UUID
	workers int
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewWorker creates a Worker with the configured queue size and pool size.
func NewWorker(service *Service, cfg config.ReplicationConfig, logger *slog.Logger) *Worker {
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Worker{
		service: service,
		jobs:    make(chan uuid.UUID, queueSize),
		workers: workers,
		logger:  logger,
	}
}

var _ port.ReplicationScheduler = (*Worker)(nil)

// Start launches the worker pool.
func (w *Worker) Start() {
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for uid := range w.jobs {
				w.service.Replicate(context.Background(), uid)
			}
		}()
	}
	w.logger.Info("replication workers started", "workers", w.workers, "queue_size", cap(w.jobs))
}

// Schedule enqueues a replication job without blocking. When the queue is
// full the job is dropped: replication is best-effort and single-attempt,
// and a dropped job is only observable in logs and metrics.
func (w *Worker) Schedule(uid uuid.UUID) {
	select {
	case w.jobs <- uid:
	default:
		w.logger.Error("replication queue full, dropping job", "uid", uid)
		replicationTotal.WithLabelValues("dropped").Inc()
	}
}

// Stop closes the queue and waits for in-flight jobs to finish. Schedule must
// not be called after Stop; stop the HTTP server first.
func (w *Worker) Stop() {
	close(w.jobs)
	w.wg.Wait()
}
