package file_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrysvd/test-task/internal/adapters/repository"
	"github.com/dmitrysvd/test-task/internal/adapters/storage"
	"github.com/dmitrysvd/test-task/internal/core/domain"
	"github.com/dmitrysvd/test-task/internal/core/service/file"
	"github.com/dmitrysvd/test-task/internal/core/service/replicate"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestFileService_Upload_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockFileRepository()
	mockBlobs := storage.NewMockBlobStore()
	mockScheduler := replicate.NewMockScheduler()
	fileService := file.NewFileService(mockRepo, mockBlobs, mockScheduler, discardLogger)

	content := bytes.NewReader([]byte("some_content"))

	mockBlobs.On("Write", ctx, mock.Anything, content, domain.IngestBuffered).
		Return(int64(12), nil)
	mockBlobs.On("Size", mock.Anything).Return(int64(12), nil)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockScheduler.On("Schedule", mock.Anything).Return()

	// Act
	uploaded, err := fileService.Upload(ctx, "text.txt", "text/html", content, domain.IngestBuffered)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, uploaded)
	assert.NotEqual(t, uuid.Nil, uploaded.UID)
	assert.Equal(t, int64(12), uploaded.Size)
	assert.Equal(t, "text/html", uploaded.Format)
	assert.Equal(t, "text", uploaded.OriginalName)
	require.NotNil(t, uploaded.Extension)
	assert.Equal(t, "txt", *uploaded.Extension)
	assert.False(t, uploaded.UploadedToCloud)

	created := mockRepo.Calls[0].Arguments.Get(1).(domain.UploadedFile)
	assert.Equal(t, *uploaded, created)

	scheduled := mockScheduler.Calls[0].Arguments.Get(0).(uuid.UUID)
	assert.Equal(t, uploaded.UID, scheduled)

	mockRepo.AssertExpectations(t)
	mockBlobs.AssertExpectations(t)
	mockScheduler.AssertExpectations(t)
}

func TestFileService_Upload_ChunkedMode(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockFileRepository()
	mockBlobs := storage.NewMockBlobStore()
	mockScheduler := replicate.NewMockScheduler()
	fileService := file.NewFileService(mockRepo, mockBlobs, mockScheduler, discardLogger)

	content := bytes.NewReader([]byte("some_content"))

	mockBlobs.On("Write", ctx, mock.Anything, content, domain.IngestChunked).
		Return(int64(12), nil)
	mockBlobs.On("Size", mock.Anything).Return(int64(12), nil)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockScheduler.On("Schedule", mock.Anything).Return()

	// Act
	uploaded, err := fileService.Upload(ctx, "text.txt", "text/html", content, domain.IngestChunked)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(12), uploaded.Size)
	mockBlobs.AssertExpectations(t)
}

func TestFileService_Upload_SizeComesFromBlobStore(t *testing.T) {
	// Arrange: the transport-reported count disagrees with the stored size;
	// the stored size wins.
	ctx := context.Background()
	mockRepo := repository.NewMockFileRepository()
	mockBlobs := storage.NewMockBlobStore()
	mockScheduler := replicate.NewMockScheduler()
	fileService := file.NewFileService(mockRepo, mockBlobs, mockScheduler, discardLogger)

	mockBlobs.On("Write", ctx, mock.Anything, mock.Anything, domain.IngestBuffered).
		Return(int64(999), nil)
	mockBlobs.On("Size", mock.Anything).Return(int64(12), nil)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockScheduler.On("Schedule", mock.Anything).Return()

	// Act
	uploaded, err := fileService.Upload(ctx, "text.txt", "text/html", bytes.NewReader(nil), domain.IngestBuffered)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(12), uploaded.Size)
}

func TestFileService_Upload_FilenameWithoutDot(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockFileRepository()
	mockBlobs := storage.NewMockBlobStore()
	mockScheduler := replicate.NewMockScheduler()
	fileService := file.NewFileService(mockRepo, mockBlobs, mockScheduler, discardLogger)

	mockBlobs.On("Write", ctx, mock.Anything, mock.Anything, domain.IngestBuffered).
		Return(int64(3), nil)
	mockBlobs.On("Size", mock.Anything).Return(int64(3), nil)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockScheduler.On("Schedule", mock.Anything).Return()

	// Act
	uploaded, err := fileService.Upload(ctx, "Makefile", "", bytes.NewReader([]byte("abc")), domain.IngestBuffered)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Makefile", uploaded.OriginalName)
	assert.Nil(t, uploaded.Extension)
	assert.Empty(t, uploaded.Format)
}

func TestFileService_Upload_BlobWriteError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockFileRepository()
	mockBlobs := storage.NewMockBlobStore()
	mockScheduler := replicate.NewMockScheduler()
	fileService := file.NewFileService(mockRepo, mockBlobs, mockScheduler, discardLogger)

	writeErr := errors.New("disk full")
	mockBlobs.On("Write", ctx, mock.Anything, mock.Anything, domain.IngestBuffered).
		Return(int64(0), writeErr)

	// Act
	uploaded, err := fileService.Upload(ctx, "text.txt", "text/html", bytes.NewReader([]byte("some_content")), domain.IngestBuffered)

	// Assert
	require.ErrorIs(t, err, writeErr)
	assert.Nil(t, uploaded)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockScheduler.AssertNotCalled(t, "Schedule", mock.Anything)
}

func TestFileService_Upload_SizeError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockFileRepository()
	mockBlobs := storage.NewMockBlobStore()
	mockScheduler := replicate.NewMockScheduler()
	fileService := file.NewFileService(mockRepo, mockBlobs, mockScheduler, discardLogger)

	mockBlobs.On("Write", ctx, mock.Anything, mock.Anything, domain.IngestBuffered).
		Return(int64(12), nil)
	mockBlobs.On("Size", mock.Anything).Return(int64(0), domain.ErrBlobNotFound)

	// Act
	uploaded, err := fileService.Upload(ctx, "text.txt", "text/html", bytes.NewReader([]byte("some_content")), domain.IngestBuffered)

	// Assert
	require.ErrorIs(t, err, domain.ErrBlobNotFound)
	assert.Nil(t, uploaded)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFileService_Upload_MetadataError_DoesNotSchedule(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockFileRepository()
	mockBlobs := storage.NewMockBlobStore()
	mockScheduler := replicate.NewMockScheduler()
	fileService := file.NewFileService(mockRepo, mockBlobs, mockScheduler, discardLogger)

	persistErr := errors.New("connection refused")
	mockBlobs.On("Write", ctx, mock.Anything, mock.Anything, domain.IngestBuffered).
		Return(int64(12), nil)
	mockBlobs.On("Size", mock.Anything).Return(int64(12), nil)
	mockRepo.On("Create", ctx, mock.Anything).Return(persistErr)

	// Act
	uploaded, err := fileService.Upload(ctx, "text.txt", "text/html", bytes.NewReader([]byte("some_content")), domain.IngestBuffered)

	// Assert
	require.ErrorIs(t, err, persistErr)
	assert.Nil(t, uploaded)
	mockScheduler.AssertNotCalled(t, "Schedule", mock.Anything)
}
