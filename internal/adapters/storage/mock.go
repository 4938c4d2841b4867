package storage

import (
	"context"
	"io"

	"github.com/dmitrysvd/test-task/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBlobStore struct {
	mock.Mock
}

func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{}
}

func (m *MockBlobStore) Write(ctx context.Context, uid uuid.UUID, content io.Reader, mode domain.IngestMode) (int64, error) {
	args := m.Called(ctx, uid, content, mode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlobStore) Open(uid uuid.UUID) (io.ReadCloser, error) {
	args := m.Called(uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockBlobStore) Size(uid uuid.UUID) (int64, error) {
	args := m.Called(uid)
	return args.Get(0).(int64), args.Error(1)
}
