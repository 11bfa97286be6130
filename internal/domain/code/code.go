// Package code holds the status codes carried in the `code` field of every API envelope.
//
// Two groups share one numeric space: raw HTTP statuses (200, 201, 400, ...) and
// five-digit business codes laid out as category*100 + subcode, e.g. 40001 is the
// bad-request category (400) with subcode 1. Success codes deliberately alias the
// HTTP values, so callers comparing by value see SUCCESS == HTTP_OK.
package code

import (
	"net/http"
	"strconv"
)

// StatusCode is the numeric code of a response envelope.
type StatusCode int

// HTTP status codes.
const (
	HTTPOK            StatusCode = 200
	HTTPCreated       StatusCode = 201
	HTTPBadRequest    StatusCode = 400
	HTTPUnauthorized  StatusCode = 401
	HTTPForbidden     StatusCode = 403
	HTTPNotFound      StatusCode = 404
	HTTPInternalError StatusCode = 500
)

// Business success codes.
const (
	Success  StatusCode = 200
	Created  StatusCode = 201
	Accepted StatusCode = 202
)

// Business error codes (category*100 + subcode).
const (
	// 400xx
	BadRequest      StatusCode = 40000
	ValidationError StatusCode = 40001
	ParamError      StatusCode = 40002

	// 401xx
	Unauthorized StatusCode = 40100
	TokenExpired StatusCode = 40101
	TokenInvalid StatusCode = 40102

	// 403xx
	Forbidden    StatusCode = 40300
	AccessDenied StatusCode = 40301

	// 404xx
	NotFound         StatusCode = 40400
	ResourceNotFound StatusCode = 40401

	// 409xx
	Conflict          StatusCode = 40900
	DuplicateResource StatusCode = 40901

	// 500xx
	InternalError      StatusCode = 50000
	ServiceUnavailable StatusCode = 50001
	DatabaseError      StatusCode = 50002

	// 502xx
	ThirdPartyError  StatusCode = 50200
	ExternalAPIError StatusCode = 50201
)

const businessThreshold = 10000

// IsBusiness reports whether c is a five-digit business code.
func (c StatusCode) IsBusiness() bool {
	return c >= businessThreshold
}

// Category returns the hundreds grouping of a business code (40101 -> 401).
// An HTTP code is its own category.
func (c StatusCode) Category() int {
	if c.IsBusiness() {
		return int(c) / 100
	}

	return int(c)
}

// Subcode returns the units part of a business code (40101 -> 1), 0 for HTTP codes.
func (c StatusCode) Subcode() int {
	if c.IsBusiness() {
		return int(c) % 100
	}

	return 0
}

// HTTPStatus returns the transport status a response carrying c is sent with.
func (c StatusCode) HTTPStatus() int {
	status := c.Category()
	if http.StatusText(status) == "" {
		return http.StatusInternalServerError
	}

	return status
}

// IsSuccess reports whether c belongs to the 2xx range.
func (c StatusCode) IsSuccess() bool {
	status := c.Category()

	return status >= 200 && status < 300
}

// Known reports whether c is one of the declared codes.
func (c StatusCode) Known() bool {
	_, ok := byValue[c]

	return ok
}

// String returns the canonical name of c. For aliased values the business
// success name wins (200 -> "SUCCESS").
func (c StatusCode) String() string {
	if def, ok := byValue[c]; ok {
		return def.Name
	}

	return "StatusCode(" + strconv.Itoa(int(c)) + ")"
}

// DefaultMessage returns the message used when a response is built without one.
func (c StatusCode) DefaultMessage() string {
	if def, ok := byValue[c]; ok {
		return def.Description
	}

	if text := http.StatusText(c.HTTPStatus()); text != "" {
		return text
	}

	return "Unknown status"
}

// FromHTTPStatus maps a raw transport status onto the category code clients
// receive in the envelope.
func FromHTTPStatus(status int) StatusCode {
	switch status {
	case http.StatusOK:
		return Success
	case http.StatusCreated:
		return Created
	case http.StatusAccepted:
		return Accepted
	case http.StatusBadRequest:
		return BadRequest
	case http.StatusUnauthorized:
		return Unauthorized
	case http.StatusForbidden:
		return Forbidden
	case http.StatusNotFound:
		return NotFound
	case http.StatusConflict:
		return Conflict
	case http.StatusBadGateway:
		return ThirdPartyError
	case http.StatusServiceUnavailable:
		return ServiceUnavailable
	}

	switch {
	case status >= 200 && status < 300:
		return Success
	case status >= 400 && status < 500:
		return BadRequest
	default:
		return InternalError
	}
}
