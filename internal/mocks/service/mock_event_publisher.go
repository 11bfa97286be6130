// Package service holds testify mocks of the domain service interfaces.
package service

import (
	"context"

	"envelope/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock of service.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

var _ service.EventPublisher = (*MockEventPublisher)(nil)

// NewMockEventPublisher creates a mock that asserts its expectations on cleanup
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockEventPublisher_Expecter records expectations by method name
type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter of m
func (m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &m.Mock}
}

func (m *MockEventPublisher) PublishNoteEvent(ctx context.Context, event *service.NoteEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (e *MockEventPublisher_Expecter) PublishNoteEvent(ctx, event any) *mock.Call {
	return e.mock.On("PublishNoteEvent", ctx, event)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

func (e *MockEventPublisher_Expecter) Close() *mock.Call {
	return e.mock.On("Close")
}
