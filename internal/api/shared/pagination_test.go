package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageRequest(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		req, err := ParsePageRequest(httptest.NewRequest("GET", "/api/accounts", nil))
		require.NoError(t, err)
		assert.Equal(t, PageRequest{Page: 1, PageSize: DefaultPageSize}, req)
	})

	t.Run("explicit page and size", func(t *testing.T) {
		t.Parallel()

		req, err := ParsePageRequest(httptest.NewRequest("GET", "/api/accounts?page=3&page_size=10", nil))
		require.NoError(t, err)
		assert.Equal(t, PageRequest{Page: 3, PageSize: 10}, req)
		assert.Equal(t, 20, req.Offset())
	})

	t.Run("malformed page", func(t *testing.T) {
		t.Parallel()

		_, err := ParsePageRequest(httptest.NewRequest("GET", "/api/accounts?page=abc", nil))
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("non-positive page", func(t *testing.T) {
		t.Parallel()

		_, err := ParsePageRequest(httptest.NewRequest("GET", "/api/accounts?page=0", nil))
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("unusable page size falls back to default", func(t *testing.T) {
		t.Parallel()

		req, err := ParsePageRequest(httptest.NewRequest("GET", "/api/accounts?page_size=abc", nil))
		require.NoError(t, err)
		assert.Equal(t, DefaultPageSize, req.PageSize)
	})

	t.Run("oversized page size is capped", func(t *testing.T) {
		t.Parallel()

		req, err := ParsePageRequest(httptest.NewRequest("GET", "/api/accounts?page_size=500", nil))
		require.NoError(t, err)
		assert.Equal(t, MaxPageSize, req.PageSize)
	})
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	t.Run("zero matches collapse to the empty shape", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "http://example.com/api/blogs?status=PUBLISHED", nil)
		page, err := NewPage(r, PageRequest{Page: 1, PageSize: 25}, 0, []string{})
		require.NoError(t, err)

		assert.Equal(t, 0, page.Count)
		assert.Equal(t, 0, page.Pages)
		assert.Equal(t, 0, page.Current)
		assert.Nil(t, page.Previous)
		assert.Nil(t, page.Next)
		assert.Equal(t, []string{}, page.Results)
	})

	t.Run("page past the end of empty results is invalid", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "http://example.com/api/blogs", nil)
		_, err := NewPage(r, PageRequest{Page: 2, PageSize: 25}, 0, []string{})
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("middle page links both neighbours", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "http://example.com/api/accounts?page=2&page_size=10", nil)
		page, err := NewPage(r, PageRequest{Page: 2, PageSize: 10}, 35, nil)
		require.NoError(t, err)

		assert.Equal(t, 35, page.Count)
		assert.Equal(t, 4, page.Pages)
		assert.Equal(t, 2, page.Current)
		require.NotNil(t, page.Previous)
		require.NotNil(t, page.Next)
		// Moving back to page 1 drops the page parameter.
		assert.Equal(t, "http://example.com/api/accounts?page_size=10", *page.Previous)
		assert.Equal(t, "http://example.com/api/accounts?page=3&page_size=10", *page.Next)
	})

	t.Run("last page has no next", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "http://example.com/api/accounts?page=4", nil)
		page, err := NewPage(r, PageRequest{Page: 4, PageSize: 10}, 35, nil)
		require.NoError(t, err)

		assert.Nil(t, page.Next)
		require.NotNil(t, page.Previous)
		assert.Equal(t, "http://example.com/api/accounts?page=3", *page.Previous)
	})

	t.Run("page past the last is invalid", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "http://example.com/api/accounts?page=5", nil)
		_, err := NewPage(r, PageRequest{Page: 5, PageSize: 10}, 35, nil)
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("forwarded proto is honored in links", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "http://example.com/api/accounts", nil)
		r.Header.Set("X-Forwarded-Proto", "https")
		page, err := NewPage(r, PageRequest{Page: 1, PageSize: 10}, 35, nil)
		require.NoError(t, err)

		require.NotNil(t, page.Next)
		assert.Equal(t, "https://example.com/api/accounts?page=2", *page.Next)
	})
}
