package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/submit"
)

// MockSubmitter is a mock implementation of port.Submitter.
type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, payload *submit.Payload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
