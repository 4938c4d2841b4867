package file

import (
	"context"
	"io"

	"github.com/dmitrysvd/test-task/internal/core/domain"

	"github.com/google/uuid"
)

// Download resolves the record for uid and opens its blob. A missing metadata
// record is a not-found; blob existence is not checked separately before the
// open.
func (f *fileService) Download(ctx context.Context, uid uuid.UUID) (io.ReadCloser, *domain.UploadedFile, error) {
	uploadedFile, err := f.repo.FindByUID(ctx, uid)
	if err != nil {
		return nil, nil, err
	}

	content, err := f.blobStore.Open(uid)
	if err != nil {
		return nil, nil, err
	}

	return content, uploadedFile, nil
}
