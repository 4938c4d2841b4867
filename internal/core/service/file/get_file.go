package file

import (
	"context"

	"github.com/dmitrysvd/test-task/internal/core/domain"

	"github.com/google/uuid"
)

// GetFile returns the metadata record for uid.
func (f *fileService) GetFile(ctx context.Context, uid uuid.UUID) (*domain.UploadedFile, error) {
	return f.repo.FindByUID(ctx, uid)
}
