package db

import (
	"context"
	"database/sql"
)

// Executor is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// repositories can run inside or outside a transaction transparently.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type TxManager interface {
	// RunInTx executes fn within a database transaction. It begins a
	// transaction, calls fn with a new context carrying the transaction, and
	// commits or rolls back based on fn's return value.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
