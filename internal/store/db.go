package store

import (
	"context"
	"database/sql"
)

// DBTX is the common interface implemented by *sql.DB and *sql.Tx.
// Stores accept it so they can run against either a connection pool or an
// enclosing transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
