package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"envelope/internal/domain/code"
	"envelope/internal/domain/entity"
	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/domain/service"
	mockService "envelope/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(header string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func requireAppCode(t *testing.T, err error, want code.StatusCode) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an application error, got %v", err)
	assert.Equal(t, want, appErr.Code())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		tokens := mockService.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)
		m := NewAuthMiddleware(tokens)
		c := newAuthContext("Bearer good")

		require.NoError(t, m.Authenticate(okHandler)(c))

		gotID, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)
		roles, ok := GetRoles(c)
		require.True(t, ok)
		assert.Equal(t, entity.Roles{entity.RoleUser}, roles)
	})

	t.Run("missing header", func(t *testing.T) {
		m := NewAuthMiddleware(mockService.NewMockTokenService(t))

		err := m.Authenticate(okHandler)(newAuthContext(""))
		requireAppCode(t, err, code.Unauthorized)
	})

	t.Run("scheme is case insensitive", func(t *testing.T) {
		for _, header := range []string{"bearer good", "BEARER good", "Bearer  good "} {
			tokens := mockService.NewMockTokenService(t)
			tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil).Once()
			m := NewAuthMiddleware(tokens)

			require.NoError(t, m.Authenticate(okHandler)(newAuthContext(header)), header)
		}
	})

	t.Run("bearer without token", func(t *testing.T) {
		m := NewAuthMiddleware(mockService.NewMockTokenService(t))

		err := m.Authenticate(okHandler)(newAuthContext("Bearer "))
		requireAppCode(t, err, code.TokenInvalid)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m := NewAuthMiddleware(mockService.NewMockTokenService(t))

		err := m.Authenticate(okHandler)(newAuthContext("Basic Zm9vOmJhcg=="))
		requireAppCode(t, err, code.TokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		tokens := mockService.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("old").Return(nil, domainerrors.ErrTokenExpired)
		m := NewAuthMiddleware(tokens)

		err := m.Authenticate(okHandler)(newAuthContext("Bearer old"))
		requireAppCode(t, err, code.TokenExpired)
	})
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	t.Run("has role", func(t *testing.T) {
		c := newAuthContext("")
		c.Set(contextKeyRoles, entity.Roles{entity.RoleUser, entity.RoleAdmin})

		assert.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
	})

	t.Run("lacks role", func(t *testing.T) {
		c := newAuthContext("")
		c.Set(contextKeyRoles, entity.Roles{entity.RoleUser})

		err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)
		requireAppCode(t, err, code.Forbidden)
	})

	t.Run("not authenticated", func(t *testing.T) {
		err := m.RequireRole(entity.RoleAdmin)(okHandler)(newAuthContext(""))
		requireAppCode(t, err, code.Forbidden)
	})
}
