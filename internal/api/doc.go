// Package api contains the HTTP handlers implementing the blog platform's
// JSON API. Every endpoint, success or failure, answers HTTP 200 with the
// fixed envelope from the shared package; clients branch on the is_error
// field, never on the status code.
package api
