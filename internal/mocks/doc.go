// Package mocks provides centralized in-memory implementations of the
// store interfaces for testing.
//
// Each mock follows the same shape: exported Fn fields override individual
// methods for one-off behavior, and when an Fn field is nil the mock falls
// back to a default in-memory implementation that honors the interface's
// documented semantics, including search, ordering, paging, uniqueness and
// foreign key checks. This keeps handler tests running against behavior
// close to the real stores without a database.
//
// Foreign key checks are opt-in: a mock only enforces a reference when its
// Known* set is non-nil. Cascades never cross store boundaries; a mock
// only manages its own rows.
package mocks
