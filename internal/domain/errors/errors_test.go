package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"envelope/internal/domain/code"
	"envelope/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredefinedErrors_CodesAndStatus(t *testing.T) {
	tests := []struct {
		err    *BaseError
		code   code.StatusCode
		status int
	}{
		{ErrBadRequest, code.BadRequest, http.StatusBadRequest},
		{ErrValidation, code.ValidationError, http.StatusBadRequest},
		{ErrParam, code.ParamError, http.StatusBadRequest},
		{ErrUnauthorized, code.Unauthorized, http.StatusUnauthorized},
		{ErrTokenExpired, code.TokenExpired, http.StatusUnauthorized},
		{ErrTokenInvalid, code.TokenInvalid, http.StatusUnauthorized},
		{ErrForbidden, code.Forbidden, http.StatusForbidden},
		{ErrAccessDenied, code.AccessDenied, http.StatusForbidden},
		{ErrNotFound, code.NotFound, http.StatusNotFound},
		{ErrResourceNotFound, code.ResourceNotFound, http.StatusNotFound},
		{ErrConflict, code.Conflict, http.StatusConflict},
		{ErrDuplicateResource, code.DuplicateResource, http.StatusConflict},
		{ErrInternal, code.InternalError, http.StatusInternalServerError},
		{ErrServiceUnavailable, code.ServiceUnavailable, http.StatusInternalServerError},
		{ErrDatabase, code.DatabaseError, http.StatusInternalServerError},
		{ErrThirdParty, code.ThirdPartyError, http.StatusBadGateway},
		{ErrExternalAPI, code.ExternalAPIError, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code())
			assert.Equal(t, tt.status, tt.err.HTTPCode())
			assert.NotEmpty(t, tt.err.Message())
		})
	}
}

func TestBaseError_CopiesKeepIdentity(t *testing.T) {
	detailed := ErrResourceNotFound.WithDetails("note 42")

	assert.True(t, stderrors.Is(detailed, ErrResourceNotFound))
	assert.False(t, stderrors.Is(detailed, ErrNotFound))
	assert.Equal(t, "Resource not found: note 42", detailed.Error())
	assert.Empty(t, ErrResourceNotFound.Details(), "predefined error must stay untouched")

	wrapped := detailed.WrapMessage("load note")
	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, code.ResourceNotFound, appErr.Code())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(
		FieldError{Field: "email", Message: "email must be a valid email address"},
		FieldError{Message: "payload rejected"},
	)

	assert.Equal(t, code.ValidationError, err.Code())
	require.Len(t, err.FieldErrors(), 2)
	assert.Equal(t, "email", err.FieldErrors()[0].Field)
	assert.Empty(t, ErrValidation.FieldErrors())
}

func TestNewParamError(t *testing.T) {
	err := NewParamError("pageSize", "must be at most 100")

	assert.Equal(t, code.ParamError, err.Code())
	assert.Equal(t, []FieldError{{Field: "pageSize", Message: "must be at most 100"}}, err.FieldErrors())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert note")

	assert.Equal(t, code.DatabaseError, err.Code())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "insert note", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, stderrors.Is(err, cause))
}

func TestThirdPartyError(t *testing.T) {
	transport := NewThirdPartyError(stderrors.New("dial tcp: refused"), "pubsub")
	assert.Equal(t, code.ThirdPartyError, transport.Code())
	assert.Equal(t, http.StatusBadGateway, transport.HTTPCode())
	assert.Contains(t, transport.Error(), "call to pubsub failed")

	upstream := NewExternalAPIError("worker", http.StatusServiceUnavailable)
	assert.Equal(t, code.ExternalAPIError, upstream.Code())
	assert.Equal(t, ErrExternalAPI.Message(), upstream.Message())
	assert.Contains(t, upstream.Details(), "503")

	var tpe *ThirdPartyError
	require.True(t, errors.As(upstream, &tpe))
	assert.Equal(t, http.StatusServiceUnavailable, tpe.Status())
}
