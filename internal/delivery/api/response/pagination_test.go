package response

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     PaginationInfo
	}{
		{name: "empty collection", page: 1, pageSize: 10, total: 0, want: PaginationInfo{Page: 1, PageSize: 10, Total: 0, TotalPages: 0}},
		{name: "exact multiple", page: 1, pageSize: 10, total: 30, want: PaginationInfo{Page: 1, PageSize: 10, Total: 30, TotalPages: 3}},
		{name: "partial last page", page: 2, pageSize: 10, total: 31, want: PaginationInfo{Page: 2, PageSize: 10, Total: 31, TotalPages: 4}},
		{name: "single item", page: 1, pageSize: 20, total: 1, want: PaginationInfo{Page: 1, PageSize: 20, Total: 1, TotalPages: 1}},
		{name: "clamps page", page: 0, pageSize: 5, total: 6, want: PaginationInfo{Page: 1, PageSize: 5, Total: 6, TotalPages: 2}},
		{name: "clamps page size", page: 1, pageSize: -3, total: 2, want: PaginationInfo{Page: 1, PageSize: 1, Total: 2, TotalPages: 2}},
		{name: "negative total", page: 1, pageSize: 5, total: -1, want: PaginationInfo{Page: 1, PageSize: 5, Total: 0, TotalPages: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewPaginationInfo(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestPaginationInfo_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, NewPaginationInfo(1, 10, 100).Offset())
	assert.Equal(t, 20, NewPaginationInfo(3, 10, 100).Offset())
	assert.Equal(t, 0, PaginationInfo{}.Offset())
	assert.Equal(t, 0, PaginationInfo{Page: 3, PageSize: -2}.Offset())
	assert.Equal(t, math.MaxInt, PaginationInfo{Page: 1152921504606846977, PageSize: 16}.Offset())
	assert.Equal(t, math.MaxInt, PaginationInfo{Page: math.MaxInt, PageSize: math.MaxInt}.Offset())
}

func TestPaginationInfo_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		info    PaginationInfo
		wantErr string
	}{
		{name: "wrong total pages", info: PaginationInfo{Page: 1, PageSize: 10, Total: 11, TotalPages: 1}, wantErr: "totalPages is 1, want 2"},
		{name: "zero page size", info: PaginationInfo{Page: 1, PageSize: 0, Total: 1, TotalPages: 1}, wantErr: "pageSize must be at least 1"},
		{name: "zero page", info: PaginationInfo{Page: 0, PageSize: 1, Total: 1, TotalPages: 1}, wantErr: "page must be at least 1"},
		{name: "negative total", info: PaginationInfo{Page: 1, PageSize: 1, Total: -1, TotalPages: 0}, wantErr: "total must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.info.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	ok := Page[int]{List: []int{1, 2}, Pagination: NewPaginationInfo(1, 2, 5)}
	assert.NoError(t, ok.Validate())

	overfull := Page[int]{List: []int{1, 2, 3}, Pagination: NewPaginationInfo(1, 2, 5)}
	err := overfull.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than pageSize 2")
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, NewPaginationInfo(1, 2, 5)))
	assert.Equal(t, []int{5}, Paginate(items, NewPaginationInfo(3, 2, 5)))
	assert.Equal(t, []int{}, Paginate(items, NewPaginationInfo(4, 2, 5)))

	assert.Equal(t, []int{}, Paginate(items, PaginationInfo{Page: 1, PageSize: -1}))
	assert.Equal(t, []int{}, Paginate(items, PaginationInfo{Page: 2, PageSize: 0}))
	assert.Equal(t, []int{}, Paginate(items, PaginationInfo{Page: 1152921504606846977, PageSize: 16}))
	assert.Equal(t, []int{5}, Paginate(items, PaginationInfo{Page: 2, PageSize: 4}))

	for page := 1; page <= 3; page++ {
		info := NewPaginationInfo(page, 2, int64(len(items)))
		p := Page[int]{List: Paginate(items, info), Pagination: info}
		assert.NoError(t, p.Validate())
	}
}
