package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "envelope/internal/delivery/context"
	"envelope/internal/domain/code"
	domainerrors "envelope/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-test")
	deliverycontext.SetAPIVersion(c, "2024-01")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newTestContext(t, "/items/1")

	require.NoError(t, Success(c, item{ID: 1, Name: "one"}))
	assert.Equal(t, http.StatusOK, rec.Code)

	env, err := Decode[item](rec.Body.Bytes())
	require.NoError(t, err)
	require.True(t, env.OK())
	assert.Equal(t, code.Success, env.Success.Code)
	assert.Equal(t, "req-test", env.Success.RequestID)
	assert.Equal(t, "2024-01", env.Success.Version)
	assert.Equal(t, "one", env.Success.Data.Name)
}

func TestCreated(t *testing.T) {
	c, rec := newTestContext(t, "/items")

	require.NoError(t, Created(c, item{ID: 2}))
	assert.Equal(t, http.StatusCreated, rec.Code)

	env, err := Decode[item](rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, code.Created, env.Success.Code)
}

func TestAccepted_HasNoData(t *testing.T) {
	c, rec := newTestContext(t, "/items/1/publish")

	require.NoError(t, Accepted(c, "queued"))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"data"`)

	env, err := Decode[item](rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, code.Accepted, env.Success.Code)
	assert.Equal(t, "queued", env.Success.Message)
	assert.Nil(t, env.Success.Data)
}

func TestSuccessMessage(t *testing.T) {
	c, rec := newTestContext(t, "/items/1")

	require.NoError(t, SuccessMessage(c, "deleted"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"data"`)
}

func TestPaginated(t *testing.T) {
	c, rec := newTestContext(t, "/items")

	info := NewPaginationInfo(1, 2, 3)
	require.NoError(t, Paginated(c, []item{{ID: 1}, {ID: 2}}, info))

	env, err := DecodePaginated[item](rec.Body.Bytes())
	require.NoError(t, err)
	require.True(t, env.OK())
	assert.Equal(t, info, env.Success.Data.Pagination)
	assert.NoError(t, env.Success.Data.Validate())
}

func TestFail_DebugRequiresExposure(t *testing.T) {
	t.Run("hidden", func(t *testing.T) {
		c, rec := newTestContext(t, "/boom")

		require.NoError(t, Fail(c, http.StatusInternalServerError, code.InternalError, "", "stack trace"))

		env, err := Decode[item](rec.Body.Bytes())
		require.NoError(t, err)
		require.NotNil(t, env.Error)
		assert.Empty(t, env.Error.Debug)
		assert.Equal(t, "/boom", env.Error.Path)
	})

	t.Run("exposed", func(t *testing.T) {
		c, rec := newTestContext(t, "/boom")
		deliverycontext.SetExposeDebug(c, true)

		require.NoError(t, Fail(c, http.StatusInternalServerError, code.InternalError, "", "stack trace"))

		env, err := Decode[item](rec.Body.Bytes())
		require.NoError(t, err)
		assert.Equal(t, "stack trace", env.Error.Debug)
	})
}

func TestShortcutErrors(t *testing.T) {
	tests := []struct {
		name   string
		call   func(echo.Context) error
		status int
		code   code.StatusCode
	}{
		{name: "bad request", call: func(c echo.Context) error { return BadRequest(c, "bad") }, status: http.StatusBadRequest, code: code.BadRequest},
		{name: "unauthorized", call: func(c echo.Context) error { return Unauthorized(c, "") }, status: http.StatusUnauthorized, code: code.Unauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t, "/x")

			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.status, rec.Code)

			env, err := Decode[item](rec.Body.Bytes())
			require.NoError(t, err)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("app error is rendered", func(t *testing.T) {
		c, rec := newTestContext(t, "/notes/1")

		err := HandleAppError(c, errors.Wrap(domainerrors.ErrDuplicateResource, "create note"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)

		env, decodeErr := Decode[item](rec.Body.Bytes())
		require.NoError(t, decodeErr)
		assert.Equal(t, code.DuplicateResource, env.Error.Code)
	})

	t.Run("plain error is passed on", func(t *testing.T) {
		c, rec := newTestContext(t, "/notes/1")

		cause := errors.New("boom")
		err := HandleAppError(c, cause)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 0, rec.Body.Len())
	})
}
