package store

// ListOptions carries the common knobs every list query supports:
// substring search across the resource's declared field set and
// offset/limit paging. A Limit of 0 means no paging (return everything),
// which callers use when they need the full match count alongside a page.
type ListOptions struct {
	// Search is an optional case-insensitive substring matched against the
	// resource's declared search fields.
	Search string

	// Offset is the number of matching rows to skip.
	Offset int

	// Limit is the maximum number of rows to return. Zero means unlimited.
	Limit int
}
