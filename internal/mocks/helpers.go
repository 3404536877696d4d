package mocks

import (
	"strings"

	"github.com/kencar17/simple-blog-api/internal/store"
)

// matchesSearch reports whether any of the fields contains the search term,
// case-insensitively. An empty term matches everything.
func matchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// pageSlice applies the offset/limit paging of the given options to a
// sorted result slice.
func pageSlice[T any](items []T, opts store.ListOptions) []T {
	if opts.Offset >= len(items) {
		return []T{}
	}
	items = items[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}
	return items
}
