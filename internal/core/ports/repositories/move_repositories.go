package repositories

import (
	"context"
	"time"

	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MoveReader defines read operations for accounting moves and their lines
type MoveReader interface {
	// FindMoveByID retrieves a move with its lines.
	FindMoveByID(ctx context.Context, moveID string) (*domain.Move, error)

	// FindLinesByIDs retrieves move lines by their identifiers.
	FindLinesByIDs(ctx context.Context, lineIDs []string) ([]domain.MoveLine, error)

	// FindLinesByDepositID retrieves the check lines attached to a deposit.
	FindLinesByDepositID(ctx context.Context, depositID string) ([]domain.MoveLine, error)

	// FindPendingCheckLines retrieves posted, unreconciled, positive-debit lines
	// on the given account and currency that are not attached to any deposit.
	FindPendingCheckLines(ctx context.Context, companyID string, accountID string, currencyCode string) ([]domain.MoveLine, error)
}

// MoveWriter defines write operations for accounting moves and their lines
type MoveWriter interface {
	// SaveMove inserts a move and all its lines atomically.
	SaveMove(ctx context.Context, move domain.Move) error

	// UpdateMoveState transitions a move between DRAFT and POSTED and keeps the
	// denormalized parent state of its lines in sync.
	UpdateMoveState(ctx context.Context, moveID string, state domain.MoveState, updatedByUserID string, updatedAt time.Time) error

	// DeleteMove removes a move and its lines atomically.
	DeleteMove(ctx context.Context, moveID string) error

	// SetLinesDeposit sets or clears the deposit back-link on the given lines.
	SetLinesDeposit(ctx context.Context, lineIDs []string, depositID *string, updatedByUserID string, updatedAt time.Time) error

	// ReconcileLines marks the given lines as mutually reconciled under one group id.
	ReconcileLines(ctx context.Context, lineIDs []string, reconcileID string, updatedByUserID string, updatedAt time.Time) error

	// UnreconcileGroup clears the reconciliation of every line in the group.
	UnreconcileGroup(ctx context.Context, reconcileID string, updatedByUserID string, updatedAt time.Time) error

	// The Tx variants run the same statements inside the caller's transaction,
	// so a workflow spanning several writes commits or rolls back as one unit.

	// SaveMoveTx inserts a move and all its lines inside the caller's transaction.
	SaveMoveTx(ctx context.Context, tx pgx.Tx, move domain.Move) error

	// UpdateMoveStateTx is UpdateMoveState inside the caller's transaction.
	UpdateMoveStateTx(ctx context.Context, tx pgx.Tx, moveID string, state domain.MoveState, updatedByUserID string, updatedAt time.Time) error

	// DeleteMoveTx is DeleteMove inside the caller's transaction.
	DeleteMoveTx(ctx context.Context, tx pgx.Tx, moveID string) error

	// ReconcileLinesTx is ReconcileLines inside the caller's transaction.
	ReconcileLinesTx(ctx context.Context, tx pgx.Tx, lineIDs []string, reconcileID string, updatedByUserID string, updatedAt time.Time) error

	// UnreconcileGroupTx is UnreconcileGroup inside the caller's transaction.
	UnreconcileGroupTx(ctx context.Context, tx pgx.Tx, reconcileID string, updatedByUserID string, updatedAt time.Time) error
}

// MoveRepositoryFacade combines all move-related repository interfaces
type MoveRepositoryFacade interface {
	MoveReader
	MoveWriter
}

// MoveRepositoryWithTx extends MoveRepositoryFacade with transaction capabilities
type MoveRepositoryWithTx interface {
	MoveRepositoryFacade
	TransactionManager
}
