package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsParams(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)

	p = &PaginationParams{Page: -3, PerPage: 0}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 10, 25)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = NewPagination(1, 10, 5)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, total := Slice(items, &PaginationParams{Page: 1, PerPage: 2})
	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, int64(5), total)

	page, _ = Slice(items, &PaginationParams{Page: 3, PerPage: 2})
	assert.Equal(t, []int{5}, page)

	// a page past the end is empty, not an error
	page, total = Slice(items, &PaginationParams{Page: 9, PerPage: 2})
	assert.Empty(t, page)
	assert.Equal(t, int64(5), total)
}
