package response

import (
	"math"

	"envelope/internal/errors"
)

// PaginationInfo describes a page window over a collection of Total items.
type PaginationInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginationInfo clamps page and pageSize to at least 1 and derives TotalPages.
func NewPaginationInfo(page, pageSize int, total int64) PaginationInfo {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}

	return PaginationInfo{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
	}
}

// Offset returns the number of items preceding the page, saturating at math.MaxInt.
func (p PaginationInfo) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}

	return (p.Page - 1) * p.PageSize
}

// Validate checks TotalPages == ceil(Total / PageSize).
func (p PaginationInfo) Validate() error {
	if p.Page < 1 {
		return errors.Errorf("page must be at least 1, got %d", p.Page)
	}
	if p.PageSize < 1 {
		return errors.Errorf("pageSize must be at least 1, got %d", p.PageSize)
	}
	if p.Total < 0 {
		return errors.Errorf("total must not be negative, got %d", p.Total)
	}
	if want := totalPages(p.Total, p.PageSize); p.TotalPages != want {
		return errors.Errorf("totalPages is %d, want %d for total %d and pageSize %d", p.TotalPages, want, p.Total, p.PageSize)
	}

	return nil
}

// Validate checks the pagination info and that the list fits in one page.
func (p Page[T]) Validate() error {
	if err := p.Pagination.Validate(); err != nil {
		return err
	}
	if len(p.List) > p.Pagination.PageSize {
		return errors.Errorf("list holds %d items, more than pageSize %d", len(p.List), p.Pagination.PageSize)
	}

	return nil
}

// Paginate cuts the page described by info out of an in-memory collection.
func Paginate[T any](items []T, info PaginationInfo) []T {
	start := info.Offset()
	if info.PageSize < 1 || start < 0 || start >= len(items) {
		return []T{}
	}

	end := start + min(info.PageSize, len(items)-start)

	return items[start:end]
}

func totalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}

	size := int64(pageSize)

	return int((total + size - 1) / size)
}
