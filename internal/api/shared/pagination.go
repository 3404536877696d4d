package shared

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Pagination parameters and bounds.
const (
	// DefaultPageSize is the number of results per page when page_size is
	// absent or unusable.
	DefaultPageSize = 25

	// MaxPageSize caps caller-supplied page sizes.
	MaxPageSize = 100

	// PageParam is the query parameter selecting the page number.
	PageParam = "page"

	// PageSizeParam is the query parameter selecting the page size.
	PageSizeParam = "page_size"
)

// ErrInvalidPage is returned for page numbers that are not positive
// integers or point past the last page. Its text is the client-facing
// failure message.
var ErrInvalidPage = errors.New("Invalid page.")

// PageRequest is the parsed pagination input of a list request.
type PageRequest struct {
	Page     int
	PageSize int
}

// ParsePageRequest reads the page and page_size parameters. A missing page
// defaults to 1; a malformed or non-positive page is ErrInvalidPage. An
// unusable page_size silently falls back to the default, and oversized
// values are capped.
func ParsePageRequest(r *http.Request) (PageRequest, error) {
	req := PageRequest{Page: 1, PageSize: DefaultPageSize}

	if raw := r.URL.Query().Get(PageParam); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return PageRequest{}, ErrInvalidPage
		}
		req.Page = page
	}

	if raw := r.URL.Query().Get(PageSizeParam); raw != "" {
		size, err := strconv.Atoi(raw)
		if err == nil && size > 0 {
			if size > MaxPageSize {
				size = MaxPageSize
			}
			req.PageSize = size
		}
	}

	return req, nil
}

// Offset is the row offset of the requested page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is the pagination wrapper every list endpoint returns as its
// content.
type Page struct {
	Count    int     `json:"count"`
	Pages    int     `json:"pages"`
	Current  int     `json:"current"`
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
	Results  any     `json:"results"`
}

// NewPage assembles the pagination wrapper for the given total and result
// slice. A zero total collapses to the fixed empty shape (count, pages and
// current all zero) for the first page; any later page, or any page past
// the last, is ErrInvalidPage.
func NewPage(r *http.Request, req PageRequest, total int, results any) (*Page, error) {
	if total == 0 {
		if req.Page > 1 {
			return nil, ErrInvalidPage
		}
		return &Page{
			Count:   0,
			Pages:   0,
			Current: 0,
			Results: results,
		}, nil
	}

	pages := (total + req.PageSize - 1) / req.PageSize
	if req.Page > pages {
		return nil, ErrInvalidPage
	}

	page := &Page{
		Count:   total,
		Pages:   pages,
		Current: req.Page,
		Results: results,
	}

	if req.Page > 1 {
		page.Previous = pageLink(r, req.Page-1)
	}
	if req.Page < pages {
		page.Next = pageLink(r, req.Page+1)
	}

	return page, nil
}

// pageLink rebuilds the request URL as an absolute link pointing at the
// given page. Page 1 drops the page parameter entirely.
func pageLink(r *http.Request, page int) *string {
	query := r.URL.Query()
	if page <= 1 {
		query.Del(PageParam)
	} else {
		query.Set(PageParam, strconv.Itoa(page))
	}

	link := url.URL{
		Scheme:   requestScheme(r),
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: query.Encode(),
	}

	s := link.String()
	return &s
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// String implements fmt.Stringer for log output.
func (p *Page) String() string {
	return fmt.Sprintf("page %d of %d (%d results)", p.Current, p.Pages, p.Count)
}
