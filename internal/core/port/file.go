package port

import (
	"context"
	"io"

	"github.com/dmitrysvd/test-task/internal/core/domain"

	"github.com/google/uuid"
)

// FileRepository is an interface to define uploaded file metadata interactions
type FileRepository interface {
	Create(ctx context.Context, file domain.UploadedFile) error
	FindByUID(ctx context.Context, uid uuid.UUID) (*domain.UploadedFile, error)
	List(ctx context.Context) ([]domain.UploadedFile, error)
	MarkUploadedToCloud(ctx context.Context, uid uuid.UUID) error
}

// BlobStore is an interface to define raw file content interactions
type BlobStore interface {
	Write(ctx context.Context, uid uuid.UUID, content io.Reader, mode domain.IngestMode) (int64, error)
	Open(uid uuid.UUID) (io.ReadCloser, error)
	Size(uid uuid.UUID) (int64, error)
}

// CloudStorage is an interface to define the remote cloud disk provider
type CloudStorage interface {
	Upload(ctx context.Context, path string, content io.Reader) error
}

// FileService is an interface to define the upload pipeline and query surface
type FileService interface {
	Upload(ctx context.Context, fileName string, format string, content io.Reader, mode domain.IngestMode) (*domain.UploadedFile, error)
	ListFiles(ctx context.Context) ([]domain.UploadedFile, error)
	GetFile(ctx context.Context, uid uuid.UUID) (*domain.UploadedFile, error)
	Download(ctx context.Context, uid uuid.UUID) (io.ReadCloser, *domain.UploadedFile, error)
}
