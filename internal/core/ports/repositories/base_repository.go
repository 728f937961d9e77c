package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines database transaction boundaries for repositories
// that need multi-statement atomicity.
type TransactionManager interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits the given transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back the given transaction. Rolling back an already
	// committed transaction is not an error.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
