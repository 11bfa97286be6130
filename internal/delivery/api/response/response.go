package response

import (
	"net/http"

	deliverycontext "envelope/internal/delivery/context"
	"envelope/internal/domain/code"
	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/errors"

	"github.com/labstack/echo/v4"
)

// MetaFrom collects the request ID and API version stored on the echo context
func MetaFrom(c echo.Context) Meta {
	return Meta{
		RequestID: deliverycontext.RequestID(c),
		Version:   deliverycontext.APIVersion(c),
	}
}

// Success returns a SUCCESS envelope with data
func Success[T any](c echo.Context, data T) error {
	return c.JSON(http.StatusOK, NewSuccess(code.Success, "", &data, MetaFrom(c)))
}

// SuccessMessage returns a SUCCESS envelope without data
func SuccessMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, NewSuccess[struct{}](code.Success, message, nil, MetaFrom(c)))
}

// Created returns a CREATED envelope with the new resource
func Created[T any](c echo.Context, data T) error {
	return c.JSON(http.StatusCreated, NewSuccess(code.Created, "", &data, MetaFrom(c)))
}

// Accepted returns an ACCEPTED envelope, the work continues asynchronously
func Accepted(c echo.Context, message string) error {
	return c.JSON(http.StatusAccepted, NewSuccess[struct{}](code.Accepted, message, nil, MetaFrom(c)))
}

// Paginated returns a SUCCESS envelope whose data is a page of list
func Paginated[T any](c echo.Context, list []T, info PaginationInfo) error {
	return c.JSON(http.StatusOK, NewPaginated(code.Success, "", list, info, MetaFrom(c)))
}

// Fail writes an error envelope for statusCode with the given HTTP status.
// The failing path is always recorded; debug is dropped unless the request
// allows diagnostic exposure.
func Fail(c echo.Context, status int, statusCode code.StatusCode, message string, debug string, fields ...FieldError) error {
	if !deliverycontext.ExposeDebug(c) {
		debug = ""
	}

	return c.JSON(status, NewError(statusCode, message, MetaFrom(c),
		WithFieldErrors(fields...),
		WithPath(c.Request().URL.Path),
		WithDebug(debug),
	))
}

// Error returns an error envelope built from an application error
func Error(c echo.Context, appErr domainerrors.AppError) error {
	return Fail(c, appErr.HTTPCode(), appErr.Code(), appErr.Message(), appErr.Details(), appErr.FieldErrors()...)
}

// BadRequest returns a BAD_REQUEST error
func BadRequest(c echo.Context, message string) error {
	return Error(c, domainerrors.ErrBadRequest.WithMessage(message))
}

// Unauthorized returns an UNAUTHORIZED error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, domainerrors.ErrUnauthorized.WithMessage(message))
}

// HandleAppError renders application errors directly and hands anything else
// to the central error handler
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		return Error(c, appErr)
	}

	return errors.WithStack(err)
}
