package utils

import (
	"net/url"
	"testing"

	"maintenance-system/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery(t *testing.T) {
	values := url.Values{
		"search":          {"  laptop "},
		"sort[priority]":  {"DESC"},
		"sort[subject]":   {"sideways"},
		"filter[stage]":   {"New Request", "Repaired"},
		"filter[team]":    {""},
		"limit":           {"10"},
		"page":            {"3"},
		"withPagination":  {"true"},
		"unrelated_field": {"x"},
	}

	f := ParseFilterFromQuery(values)

	assert.Equal(t, "laptop", f.Search)
	assert.Equal(t, map[string]string{"priority": "desc"}, f.Sort)
	assert.Equal(t, "New Request", f.FilterValue("stage"))
	assert.Equal(t, "", f.FilterValue("team"))
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 20, f.Offset)
	assert.True(t, f.WithPagination)
}

func TestParseFilterFromQuery_Defaults(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{"limit": {"100000"}, "page": {"-1"}})

	assert.Equal(t, MaxLimit, f.Limit)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 0, f.Offset)
	assert.False(t, f.WithPagination)

	f = ParseFilterFromQuery(url.Values{"offset": {"7"}, "limit": {"abc"}})
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 7, f.Offset)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, items, Paginate(items, types.Filter{Limit: 2}))
	assert.Equal(t, []int{3, 4}, Paginate(items, types.Filter{WithPagination: true, Limit: 2, Offset: 2}))
	assert.Equal(t, []int{5}, Paginate(items, types.Filter{WithPagination: true, Limit: 2, Offset: 4}))
	assert.Equal(t, []int{}, Paginate(items, types.Filter{WithPagination: true, Limit: 2, Offset: 9}))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(21, types.Filter{Limit: 10, Page: 2})
	assert.Equal(t, types.Pagination{TotalCount: 21, Page: 2, Limit: 10, TotalPages: 3}, p)
}
