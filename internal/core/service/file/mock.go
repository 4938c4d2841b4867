package file

import (
	"context"
	"io"

	"github.com/dmitrysvd/test-task/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	mock.Mock
}

// NewMockFileService creates a new MockFileService
func NewMockFileService() *MockFileService {
	return &MockFileService{}
}

func (m *MockFileService) Upload(ctx context.Context, fileName string, format string, content io.Reader, mode domain.IngestMode) (*domain.UploadedFile, error) {
	args := m.Called(ctx, fileName, format, content, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadedFile), args.Error(1)
}

func (m *MockFileService) ListFiles(ctx context.Context) ([]domain.UploadedFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UploadedFile), args.Error(1)
}

func (m *MockFileService) GetFile(ctx context.Context, uid uuid.UUID) (*domain.UploadedFile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadedFile), args.Error(1)
}

func (m *MockFileService) Download(ctx context.Context, uid uuid.UUID) (io.ReadCloser, *domain.UploadedFile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*domain.UploadedFile), args.Error(2)
}
