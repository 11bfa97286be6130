package service

import (
	"time"

	"envelope/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock of service.TokenService
type MockTokenService struct {
	mock.Mock
}

var _ service.TokenService = (*MockTokenService)(nil)

// NewMockTokenService creates a mock that asserts its expectations on cleanup
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTokenService_Expecter records expectations by method name
type MockTokenService_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter of m
func (m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &m.Mock}
}

func (m *MockTokenService) GenerateAccessToken(userID uuid.UUID, roles []string) (string, time.Time, error) {
	args := m.Called(userID, roles)
	expiresAt, _ := args.Get(1).(time.Time)

	return args.String(0), expiresAt, args.Error(2)
}

func (e *MockTokenService_Expecter) GenerateAccessToken(userID, roles any) *mock.Call {
	return e.mock.On("GenerateAccessToken", userID, roles)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (e *MockTokenService_Expecter) ValidateToken(tokenString any) *mock.Call {
	return e.mock.On("ValidateToken", tokenString)
}
