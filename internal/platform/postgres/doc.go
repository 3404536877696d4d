// Package postgres provides PostgreSQL implementations of the store
// interfaces. All stores accept a store.DBTX (a *sql.DB or *sql.Tx) except
// the blog post store, which manages its own transactions for the category
// and tag link tables.
package postgres
