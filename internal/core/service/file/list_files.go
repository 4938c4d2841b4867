package file

import (
	"context"

	"github.com/dmitrysvd/test-task/internal/core/domain"
)

// ListFiles returns all metadata records.
func (f *fileService) ListFiles(ctx context.Context) ([]domain.UploadedFile, error) {
	return f.repo.List(ctx)
}
