package file

import (
	"log/slog"

	"github.com/dmitrysvd/test-task/internal/core/port"
)

type fileService struct {
	repo      port.FileRepository
	blobStore port.BlobStore
	scheduler port.ReplicationScheduler
	logger    *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(repo port.FileRepository, blobStore port.BlobStore, scheduler port.ReplicationScheduler, logger *slog.Logger) port.FileService {
	return &fileService{
		repo:      repo,
		blobStore: blobStore,
		scheduler: scheduler,
		logger:    logger,
	}
}
