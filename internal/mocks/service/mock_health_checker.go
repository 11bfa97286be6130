package service

import (
	"context"

	"envelope/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockHealthChecker is a mock of service.HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

var _ service.HealthChecker = (*MockHealthChecker)(nil)

// NewMockHealthChecker creates a mock that asserts its expectations on cleanup
func NewMockHealthChecker(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHealthChecker {
	m := &MockHealthChecker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHealthChecker_Expecter records expectations by method name
type MockHealthChecker_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter of m
func (m *MockHealthChecker) EXPECT() *MockHealthChecker_Expecter {
	return &MockHealthChecker_Expecter{mock: &m.Mock}
}

func (m *MockHealthChecker) Name() string {
	return m.Called().String(0)
}

func (e *MockHealthChecker_Expecter) Name() *mock.Call {
	return e.mock.On("Name")
}

func (m *MockHealthChecker) Check(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (e *MockHealthChecker_Expecter) Check(ctx any) *mock.Call {
	return e.mock.On("Check", ctx)
}
