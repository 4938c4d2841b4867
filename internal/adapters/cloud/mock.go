package cloud

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockCloudStorage struct {
	mock.Mock
}

func NewMockCloudStorage() *MockCloudStorage {
	return &MockCloudStorage{}
}

func (m *MockCloudStorage) Upload(ctx context.Context, path string, content io.Reader) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}
