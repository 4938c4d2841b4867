package replicate

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockScheduler is a mock implementation of ReplicationScheduler
type MockScheduler struct {
	mock.Mock
}

// NewMockScheduler creates a new MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

func (m *MockScheduler) Schedule(uid uuid.UUID) {
	m.Called(uid)
}
