package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"envelope/internal/delivery/api/response"
	deliverycontext "envelope/internal/delivery/context"
	"envelope/internal/domain/code"
	domainerrors "envelope/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noBody struct{}

func newErrorContext(t *testing.T, exposeDebug bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-err")
	deliverycontext.SetExposeDebug(c, exposeDebug)

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorResponse {
	t.Helper()

	env, err := response.Decode[noBody](rec.Body.Bytes())
	require.NoError(t, err)
	require.False(t, env.OK())
	require.NotNil(t, env.Error)

	return env.Error
}

func TestHandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   code.StatusCode
	}{
		{name: "app error", err: domainerrors.ErrResourceNotFound, wantStatus: http.StatusNotFound, wantCode: code.ResourceNotFound},
		{name: "wrapped app error", err: errors.Wrap(domainerrors.ErrAccessDenied, "get note"), wantStatus: http.StatusForbidden, wantCode: code.AccessDenied},
		{name: "database error", err: domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "insert"), wantStatus: http.StatusInternalServerError, wantCode: code.DatabaseError},
		{name: "external api", err: domainerrors.NewExternalAPIError("pubsub", 503), wantStatus: http.StatusBadGateway, wantCode: code.ExternalAPIError},
		{name: "echo not found", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: code.NotFound},
		{name: "echo method not allowed", err: echo.ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed, wantCode: code.BadRequest},
		{name: "echo body too large", err: echo.ErrStatusRequestEntityTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantCode: code.BadRequest},
		{name: "plain error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: code.InternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newErrorContext(t, false)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			got := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, "req-err", got.RequestID)
			assert.Equal(t, "/api/v1/notes", got.Path)
			assert.NotEmpty(t, got.Message)
			assert.Empty(t, got.Debug)
		})
	}
}

func TestHandleHTTPError_ValidationFields(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorContext(t, false)

	m.HandleHTTPError(domainerrors.NewValidationError(domainerrors.FieldError{Field: "title", Message: "title is required"}), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, code.ValidationError, got.Code)
	assert.Equal(t, []response.FieldError{{Field: "title", Message: "title is required"}}, got.Errors)
}

func TestHandleHTTPError_DebugExposure(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorContext(t, true)

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	got := decodeError(t, rec)
	assert.Equal(t, code.InternalError, got.Code)
	assert.Equal(t, "pq: connection refused", got.Debug)
	assert.NotContains(t, got.Message, "pq")
}

func TestHandleHTTPError_Committed(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorContext(t, false)

	require.NoError(t, c.String(http.StatusOK, "done"))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
