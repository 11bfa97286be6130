package errors

import (
	"envelope/internal/domain/code"
	"envelope/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int             // HTTP status code
	Code() code.StatusCode     // Business status code
	Message() string           // User-friendly error message
	Details() string           // Detailed error information (optional)
	FieldErrors() []FieldError // Field-level failures (optional)
}

// FieldError describes one failing input field. Field is empty for
// failures that are not tied to a single field.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	code    code.StatusCode
	message string
	details string
	fields  []FieldError
}

// NewBaseError creates a new base error
func NewBaseError(statusCode code.StatusCode, message, details string) *BaseError {
	if message == "" {
		message = statusCode.DefaultMessage()
	}

	return &BaseError{
		code:    statusCode,
		message: message,
		details: details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.code.HTTPStatus()
}

// Code returns the business status code
func (e *BaseError) Code() code.StatusCode {
	return e.code
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// FieldErrors returns the field-level failures attached to the error
func (e *BaseError) FieldErrors() []FieldError {
	return e.fields
}

// Is matches any BaseError carrying the same code, so a copy produced by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.code == e.code
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithMessage replaces the user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	clone := *e
	clone.message = message

	return &clone
}

// WithFieldErrors attaches field-level failures
func (e *BaseError) WithFieldErrors(fields ...FieldError) *BaseError {
	clone := *e
	clone.fields = append([]FieldError(nil), fields...)

	return &clone
}

// Predefined error types, one per business code
var (
	// 400xx
	ErrBadRequest = NewBaseError(code.BadRequest, "Bad request", "")
	ErrValidation = NewBaseError(code.ValidationError, "Validation failed", "")
	ErrParam      = NewBaseError(code.ParamError, "Invalid parameter", "")

	// 401xx
	ErrUnauthorized = NewBaseError(code.Unauthorized, "Authentication required", "")
	ErrTokenExpired = NewBaseError(code.TokenExpired, "Token has expired", "")
	ErrTokenInvalid = NewBaseError(code.TokenInvalid, "Token is invalid", "")

	// 403xx
	ErrForbidden    = NewBaseError(code.Forbidden, "Forbidden", "")
	ErrAccessDenied = NewBaseError(code.AccessDenied, "You do not have access to this resource", "")

	// 404xx
	ErrNotFound         = NewBaseError(code.NotFound, "Not found", "")
	ErrResourceNotFound = NewBaseError(code.ResourceNotFound, "Resource not found", "")

	// 409xx
	ErrConflict          = NewBaseError(code.Conflict, "Resource conflict", "")
	ErrDuplicateResource = NewBaseError(code.DuplicateResource, "Resource already exists", "")

	// 500xx
	ErrInternal           = NewBaseError(code.InternalError, "Internal server error", "")
	ErrServiceUnavailable = NewBaseError(code.ServiceUnavailable, "Service unavailable", "")
	ErrDatabase           = NewBaseError(code.DatabaseError, "Database error", "")

	// 502xx
	ErrThirdParty  = NewBaseError(code.ThirdPartyError, "Third-party service error", "")
	ErrExternalAPI = NewBaseError(code.ExternalAPIError, "External API error", "")
)

// NewValidationError builds a VALIDATION_ERROR carrying the given field failures
func NewValidationError(fields ...FieldError) AppError {
	return ErrValidation.WithFieldErrors(fields...)
}

// NewParamError builds a PARAM_ERROR for a single query or path parameter
func NewParamError(field, message string) AppError {
	return ErrParam.WithFieldErrors(FieldError{Field: field, Message: message})
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return code.DatabaseError.HTTPStatus()
}

// Code returns the business status code
func (e *DatabaseExecuteError) Code() code.StatusCode {
	return code.DatabaseError
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// FieldErrors returns nil, database failures are never field-scoped
func (e *DatabaseExecuteError) FieldErrors() []FieldError {
	return nil
}

// ThirdPartyError reports a failed call to a service outside this process.
// When the remote answered, Status holds its HTTP status and the error
// carries EXTERNAL_API_ERROR; transport failures carry THIRD_PARTY_ERROR.
type ThirdPartyError struct {
	err     error
	service string
	status  int
}

// NewThirdPartyError wraps a transport-level failure talking to service
func NewThirdPartyError(err error, service string) AppError {
	return &ThirdPartyError{err: err, service: service}
}

// NewExternalAPIError records a non-success answer from service
func NewExternalAPIError(service string, status int) AppError {
	return &ThirdPartyError{
		err:     errors.Errorf("%s answered with status %d", service, status),
		service: service,
		status:  status,
	}
}

// Error implements the error interface
func (e *ThirdPartyError) Error() string {
	return errors.Wrapf(e.err, "call to %s failed", e.service).Error()
}

// Unwrap exposes the underlying failure
func (e *ThirdPartyError) Unwrap() error {
	return e.err
}

// Status returns the remote HTTP status, 0 if none was received
func (e *ThirdPartyError) Status() int {
	return e.status
}

// HTTPCode returns the HTTP status code
func (e *ThirdPartyError) HTTPCode() int {
	return e.Code().HTTPStatus()
}

// Code returns the business status code
func (e *ThirdPartyError) Code() code.StatusCode {
	if e.status != 0 {
		return code.ExternalAPIError
	}

	return code.ThirdPartyError
}

// Message returns the user-friendly error message
func (e *ThirdPartyError) Message() string {
	if e.status != 0 {
		return ErrExternalAPI.Message()
	}

	return ErrThirdParty.Message()
}

// Details returns detailed error information
func (e *ThirdPartyError) Details() string {
	return e.err.Error()
}

// FieldErrors returns nil, upstream failures are never field-scoped
func (e *ThirdPartyError) FieldErrors() []FieldError {
	return nil
}
