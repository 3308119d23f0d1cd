package pagination

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClampsInput(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		pageSize string
		want     Params
	}{
		{"defaults", "", "", Params{Page: 1, PageSize: 20, Offset: 0, Limit: 20}},
		{"normal", "2", "10", Params{Page: 2, PageSize: 10, Offset: 10, Limit: 10}},
		{"page zero clamps", "0", "10", Params{Page: 1, PageSize: 10, Offset: 0, Limit: 10}},
		{"negative page clamps", "-3", "10", Params{Page: 1, PageSize: 10, Offset: 0, Limit: 10}},
		{"oversized page size clamps", "1", "500", Params{Page: 1, PageSize: 100, Offset: 0, Limit: 100}},
		{"page size zero clamps", "1", "0", Params{Page: 1, PageSize: 20, Offset: 0, Limit: 20}},
		{"garbage input", "abc", "xyz", Params{Page: 1, PageSize: 20, Offset: 0, Limit: 20}},
		{"large page", "7", "25", Params{Page: 7, PageSize: 25, Offset: 150, Limit: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.page, tt.pageSize))
		})
	}
}

func TestParseOffsetIdentity(t *testing.T) {
	for page := 1; page <= 10; page++ {
		for _, size := range []int{1, 7, 20, 100} {
			params := Parse(strconv.Itoa(page), strconv.Itoa(size))
			assert.Equal(t, (page-1)*size, params.Offset)
			assert.Equal(t, size, params.Limit)
		}
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 10, 25)

	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)
}

func TestNewMetaBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of three", 1, 2, 5, 3, true, false},
		{"last page", 3, 2, 5, 3, false, true},
		{"single page", 1, 20, 5, 1, false, false},
		{"empty result", 1, 20, 0, 0, false, false},
		{"exact division", 2, 5, 10, 2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.page, tt.pageSize, tt.total)

			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.hasNext, meta.HasNextPage)
			assert.Equal(t, tt.hasPrev, meta.HasPreviousPage)
		})
	}
}
