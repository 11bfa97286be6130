package response

import (
	"encoding/json"

	"envelope/internal/domain/code"
	"envelope/internal/errors"
)

var (
	// ErrMissingDiscriminant is returned for bodies without a boolean `success` member.
	ErrMissingDiscriminant = errors.New("envelope has no success discriminant")
	// ErrVariantMismatch is returned when the body contradicts its `success` member.
	ErrVariantMismatch = errors.New("envelope contradicts its success discriminant")
)

// Envelope holds exactly one decoded variant, selected by the `success` member.
type Envelope[S any] struct {
	Success *S
	Error   *ErrorResponse
}

// OK reports whether the success variant was decoded.
func (e Envelope[S]) OK() bool {
	return e.Success != nil
}

// Decode reads a success-or-error envelope whose data member is a T.
func Decode[T any](body []byte) (Envelope[SuccessResponse[T]], error) {
	return decode[SuccessResponse[T]](body)
}

// DecodePaginated reads a paginated-or-error envelope whose list holds T.
func DecodePaginated[T any](body []byte) (Envelope[PaginationResponse[T]], error) {
	return decode[PaginationResponse[T]](body)
}

func decode[S any](body []byte) (Envelope[S], error) {
	var head struct {
		Success *bool           `json:"success"`
		Code    code.StatusCode `json:"code"`
		Data    json.RawMessage `json:"data"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return Envelope[S]{}, errors.Wrap(err, "decode envelope discriminant")
	}
	if head.Success == nil {
		return Envelope[S]{}, errors.WithStack(ErrMissingDiscriminant)
	}
	if err := checkVariant(*head.Success, head.Code, len(head.Data) > 0, len(head.Errors) > 0); err != nil {
		return Envelope[S]{}, err
	}

	if !*head.Success {
		var resp ErrorResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return Envelope[S]{}, errors.Wrap(err, "decode error envelope")
		}

		return Envelope[S]{Error: &resp}, nil
	}

	var resp S
	if err := json.Unmarshal(body, &resp); err != nil {
		return Envelope[S]{}, errors.Wrap(err, "decode success envelope")
	}

	return Envelope[S]{Success: &resp}, nil
}

// checkVariant rejects success bodies with errors or a non-2xx code, and error
// bodies with data or a 2xx code.
func checkVariant(success bool, statusCode code.StatusCode, hasData, hasErrors bool) error {
	switch {
	case success && hasErrors:
		return errors.Wrap(ErrVariantMismatch, "success envelope carries errors")
	case success && !statusCode.IsSuccess():
		return errors.Wrapf(ErrVariantMismatch, "success envelope carries code %d", statusCode)
	case !success && hasData:
		return errors.Wrap(ErrVariantMismatch, "error envelope carries data")
	case !success && statusCode.IsSuccess():
		return errors.Wrapf(ErrVariantMismatch, "error envelope carries code %d", statusCode)
	}

	return nil
}
