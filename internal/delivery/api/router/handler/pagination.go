package handler

import (
	"math"
	"strconv"
	"strings"

	"envelope/config"
	domainerrors "envelope/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const (
	queryPage     = "page"
	queryPageSize = "pageSize"
)

// pageQuery is the requested window of a list endpoint
type pageQuery struct {
	Page     int
	PageSize int
}

func (q pageQuery) offset() int {
	return (q.Page - 1) * q.PageSize
}

// parsePageQuery reads page and pageSize, falling back to the configured defaults.
// Malformed or out-of-range values are PARAM_ERROR with one field entry each.
func parsePageQuery(c echo.Context, cfg *config.PaginationConfig) (pageQuery, error) {
	q := pageQuery{Page: 1, PageSize: cfg.DefaultPageSize}

	var fields []domainerrors.FieldError

	if raw := strings.TrimSpace(c.QueryParam(queryPage)); raw != "" {
		page, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields = append(fields, domainerrors.FieldError{Field: queryPage, Message: "page must be an integer"})
		case page < 1:
			fields = append(fields, domainerrors.FieldError{Field: queryPage, Message: "page must be at least 1"})
		default:
			q.Page = page
		}
	}

	if raw := strings.TrimSpace(c.QueryParam(queryPageSize)); raw != "" {
		size, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields = append(fields, domainerrors.FieldError{Field: queryPageSize, Message: "pageSize must be an integer"})
		case size < 1:
			fields = append(fields, domainerrors.FieldError{Field: queryPageSize, Message: "pageSize must be at least 1"})
		case size > cfg.MaxPageSize:
			fields = append(fields, domainerrors.FieldError{Field: queryPageSize, Message: "pageSize must be at most " + strconv.Itoa(cfg.MaxPageSize)})
		default:
			q.PageSize = size
		}
	}

	if q.PageSize > 0 && q.Page-1 > math.MaxInt/q.PageSize {
		fields = append(fields, domainerrors.FieldError{Field: queryPage, Message: "page is beyond the last addressable item"})
	}

	if len(fields) > 0 {
		return q, domainerrors.ErrParam.WithFieldErrors(fields...)
	}

	return q, nil
}
