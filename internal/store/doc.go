// Package store defines the persistence interfaces the API is written
// against, together with the sentinel errors and list options shared by
// every implementation. The postgres implementations live in
// internal/platform/postgres; in-memory fakes for tests live in
// internal/mocks.
package store
