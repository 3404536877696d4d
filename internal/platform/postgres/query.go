package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/kencar17/simple-blog-api/internal/store"
)

// applyPaging appends LIMIT/OFFSET clauses for the given list options,
// numbering the placeholders after the existing args. A zero limit means
// no limit.
func applyPaging(query string, args []any, opts store.ListOptions) (string, []any) {
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, opts.Offset)
	}
	return query, args
}

func closeRows(rows *sql.Rows, log *slog.Logger) {
	if err := rows.Close(); err != nil {
		log.Error("failed to close rows", slog.String("error", err.Error()))
	}
}
