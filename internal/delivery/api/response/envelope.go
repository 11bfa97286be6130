package response

import (
	"time"

	"envelope/internal/domain/code"
	domainerrors "envelope/internal/domain/errors"
)

// Base holds the fields every envelope carries, success or not.
type Base struct {
	Success   bool            `json:"success"`
	Code      code.StatusCode `json:"code"`
	Message   string          `json:"message"`
	Timestamp int64           `json:"timestamp"` // Unix milliseconds
	RequestID string          `json:"requestId"`
}

// SuccessResponse is the envelope of a successful call. Data is nil for
// responses that carry no payload, such as 202 Accepted.
type SuccessResponse[T any] struct {
	Base
	Data    *T     `json:"data,omitempty"`
	Version string `json:"version,omitempty"`
}

// FieldError is one entry of ErrorResponse.Errors.
type FieldError = domainerrors.FieldError

// ErrorResponse is the envelope of a failed call.
type ErrorResponse struct {
	Base
	Errors []FieldError `json:"errors,omitempty"`
	Path   string       `json:"path,omitempty"`
	Debug  string       `json:"debug,omitempty"`
}

// Page is the data member of a paginated response.
type Page[T any] struct {
	List       []T            `json:"list"`
	Pagination PaginationInfo `json:"pagination"`
}

// PaginationResponse is a successful envelope whose data is always a Page.
type PaginationResponse[T any] struct {
	Base
	Data    Page[T] `json:"data"`
	Version string  `json:"version,omitempty"`
}

// Meta carries the per-request values stamped onto an envelope.
type Meta struct {
	RequestID string
	Version   string
	Now       time.Time
}

func (m Meta) base(success bool, statusCode code.StatusCode, message string) Base {
	if message == "" {
		message = statusCode.DefaultMessage()
	}

	now := m.Now
	if now.IsZero() {
		now = time.Now()
	}

	return Base{
		Success:   success,
		Code:      statusCode,
		Message:   message,
		Timestamp: now.UnixMilli(),
		RequestID: m.RequestID,
	}
}

// NewSuccess builds a success envelope. A nil data pointer omits the member.
func NewSuccess[T any](statusCode code.StatusCode, message string, data *T, meta Meta) SuccessResponse[T] {
	return SuccessResponse[T]{
		Base:    meta.base(true, statusCode, message),
		Data:    data,
		Version: meta.Version,
	}
}

// ErrorOption customizes an ErrorResponse built by NewError.
type ErrorOption func(*ErrorResponse)

// WithFieldErrors attaches field-level failures.
func WithFieldErrors(fields ...FieldError) ErrorOption {
	return func(r *ErrorResponse) {
		if len(fields) > 0 {
			r.Errors = append(r.Errors, fields...)
		}
	}
}

// WithPath records the request path that failed.
func WithPath(path string) ErrorOption {
	return func(r *ErrorResponse) {
		r.Path = path
	}
}

// WithDebug records diagnostic detail. Callers decide whether it may be exposed.
func WithDebug(debug string) ErrorOption {
	return func(r *ErrorResponse) {
		r.Debug = debug
	}
}

// NewError builds an error envelope.
func NewError(statusCode code.StatusCode, message string, meta Meta, opts ...ErrorOption) ErrorResponse {
	resp := ErrorResponse{
		Base: meta.base(false, statusCode, message),
	}

	for _, opt := range opts {
		opt(&resp)
	}

	return resp
}

// NewPaginated builds a paginated success envelope. A nil list is encoded as [].
func NewPaginated[T any](statusCode code.StatusCode, message string, list []T, info PaginationInfo, meta Meta) PaginationResponse[T] {
	if list == nil {
		list = []T{}
	}

	return PaginationResponse[T]{
		Base: meta.base(true, statusCode, message),
		Data: Page[T]{
			List:       list,
			Pagination: info,
		},
		Version: meta.Version,
	}
}
