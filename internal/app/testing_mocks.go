//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/rms/internal/domain/deploy"

	"github.com/stretchr/testify/mock"
)

// MockDialer is a mock implementation of deploy.Dialer
type MockDialer struct {
	mock.Mock
}

func (m *MockDialer) Dial(ctx context.Context, target deploy.Target) (deploy.Executor, error) {
	args := m.Called(ctx, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(deploy.Executor), args.Error(1)
}

// MockExecutor is a mock implementation of deploy.Executor
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Run(ctx context.Context, command string) (string, error) {
	args := m.Called(ctx, command)
	return args.String(0), args.Error(1)
}

func (m *MockExecutor) Close() error {
	args := m.Called()
	return args.Error(0)
}
