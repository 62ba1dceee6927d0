package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is embedded by repository facades whose callers need to
// group several statements into one database transaction, such as posting a
// deposit's journal entry together with its reconciliations.
type TransactionManager interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits the given transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back the given transaction. Rolling back an already
	// committed transaction is a no-op for callers using defer.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
