package pagination

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	testCases := []struct {
		query string
		want  Params
	}{
		{"", Params{Page: DefaultPage, Limit: DefaultLimit}},
		{"?page=3&limit=5", Params{Page: 3, Limit: 5}},
		{"?page=0&limit=-1", Params{Page: DefaultPage, Limit: DefaultLimit}},
		{"?page=x&limit=y", Params{Page: DefaultPage, Limit: DefaultLimit}},
		{"?limit=1000", Params{Page: DefaultPage, Limit: MaxLimit}},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseParams(httptest.NewRequest("GET", "/patients"+tc.query, nil)))
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Slice(items, Params{Page: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, Meta{CurrentPage: 2, PerPage: 2, TotalPages: 3, TotalRecords: 5, HasNext: true, HasPrevious: true}, meta)

	page, meta = Slice(items, Params{Page: 3, Limit: 2})
	assert.Equal(t, []int{5}, page)
	assert.False(t, meta.HasNext)

	page, _ = Slice(items, Params{Page: 10, Limit: 2})
	assert.Empty(t, page)

	page, meta = Slice([]int{}, Params{})
	assert.Empty(t, page)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestSlice_HugePageDoesNotOverflow(t *testing.T) {
	r := httptest.NewRequest("GET", "/patients?page=922337203685477582&limit=10", nil)
	p := ParseParams(r)
	assert.Equal(t, 922337203685477582, p.Page)

	var page []int
	var meta Meta
	assert.NotPanics(t, func() {
		page, meta = Slice([]int{1, 2, 3}, p)
	})
	assert.Empty(t, page)
	assert.Equal(t, 3, meta.TotalRecords)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)

	page, _ = Slice([]int{1, 2, 3}, Params{Page: math.MaxInt, Limit: MaxLimit})
	assert.Empty(t, page)
}
