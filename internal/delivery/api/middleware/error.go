package middleware

import (
	"log/slog"
	"net/http"

	"envelope/internal/delivery/api/response"
	"envelope/internal/delivery/api/validator"
	"envelope/internal/domain/code"
	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every failure
// leaves as an error envelope.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, "Application error", err)
		}

		_ = response.Error(c, appErr)

		return
	}

	if verrs, ok := errors.Find[playground.ValidationErrors](err); ok {
		_ = response.Error(c, domainerrors.NewValidationError(validator.FieldErrors(verrs)...))

		return
	}

	// Routing misses, bad binds and middleware rejections keep their transport status
	if httpErr, ok := errors.Find[*echo.HTTPError](err); ok {
		message := ""
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		debug := ""
		if httpErr.Internal != nil {
			debug = httpErr.Internal.Error()
		}

		if httpErr.Code >= http.StatusInternalServerError {
			m.logError(c, "HTTP error", err)
		}

		_ = response.Fail(c, httpErr.Code, code.FromHTTPStatus(httpErr.Code), message, debug)

		return
	}

	m.logError(c, "Unhandled error", err)

	// The client sees a generic message; the cause only reaches debug when exposed
	_ = response.Fail(c, http.StatusInternalServerError, code.InternalError, "", err.Error())
}

func (m *ErrorMiddleware) logError(c echo.Context, msg string, err error) {
	m.logger.Error(msg,
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
