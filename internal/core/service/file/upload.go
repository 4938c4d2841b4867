package file

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrysvd/test-task/internal/core/domain"

	"github.com/google/uuid"
)

// Upload runs the upload pipeline: generate a uid, stream the content to the
// blob store, derive metadata, persist the record, then hand the uid to the
// replication scheduler. The caller never waits on replication.
//
// The recorded size is read back from the blob store after the write, not
// taken from the transport. A failed metadata insert leaves the blob behind;
// there is no compensating delete.
func (f *fileService) Upload(ctx context.Context, fileName string, format string, content io.Reader, mode domain.IngestMode) (*domain.UploadedFile, error) {
	uid := uuid.New()
	f.logger.Info("upload started", "uid", uid, "mode", mode)

	if _, err := f.blobStore.Write(ctx, uid, content, mode); err != nil {
		return nil, fmt.Errorf("error storing content for %s: %w", uid, err)
	}

	size, err := f.blobStore.Size(uid)
	if err != nil {
		return nil, fmt.Errorf("error reading stored size for %s: %w", uid, err)
	}

	originalName, extension := domain.SplitFilename(fileName)

	uploadedFile := domain.UploadedFile{
		UID:          uid,
		Size:         size,
		Format:       format,
		OriginalName: originalName,
		Extension:    extension,
	}

	if err := f.repo.Create(ctx, uploadedFile); err != nil {
		return nil, fmt.Errorf("error saving metadata for %s: %w", uid, err)
	}
	f.logger.Info("file and metadata saved", "uid", uid, "size", size)

	f.scheduler.Schedule(uid)

	return &uploadedFile, nil
}
