package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendApplicationReceived(ctx context.Context, toEmail, toName, productName, reference string) error {
	args := m.Called(ctx, toEmail, toName, productName, reference)
	return args.Error(0)
}
