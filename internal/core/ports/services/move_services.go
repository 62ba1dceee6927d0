package services

import (
	"context"

	"github.com/finacct/check_deposit_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MoveReaderSvc defines read operations for accounting moves
type MoveReaderSvc interface {
	// GetMoveByID retrieves a move with its lines.
	GetMoveByID(ctx context.Context, moveID string) (*domain.Move, error)
}

// MoveWriterSvc defines the posting engine operations on accounting moves.
type MoveWriterSvc interface {
	// CreateMove persists a draft move with its lines after validating them.
	CreateMove(ctx context.Context, move domain.Move, creatorUserID string) (*domain.Move, error)

	// PostMove validates that the move balances to zero and marks it POSTED.
	PostMove(ctx context.Context, moveID string, userID string) error

	// UnpostMove returns a posted move to draft. Fails when the move's journal
	// has lock_posted_entries set.
	UnpostMove(ctx context.Context, moveID string, userID string) error

	// DeleteMove removes a draft move and its lines.
	DeleteMove(ctx context.Context, moveID string, userID string) error

	// PostMoveWithReconciliation creates and posts the move, then reconciles
	// each line of pairedLineIDs with the move line at the same index. The
	// whole sequence, including the finish callback, runs in one database
	// transaction: a failure at any step leaves nothing persisted.
	PostMoveWithReconciliation(ctx context.Context, move domain.Move, pairedLineIDs []string, creatorUserID string, finish func(ctx context.Context, tx pgx.Tx) error) (*domain.Move, error)

	// RevertMove unposts the move, undoes every reconciliation group its lines
	// belong to and deletes it, all in one database transaction together with
	// the finish callback. Fails when the move's journal has
	// lock_posted_entries set.
	RevertMove(ctx context.Context, moveID string, userID string, finish func(ctx context.Context, tx pgx.Tx) error) error
}

// ReconcilerSvc matches move lines against each other.
type ReconcilerSvc interface {
	// ReconcileLines reconciles the given lines together: same account, posted
	// moves, zero net balance.
	ReconcileLines(ctx context.Context, lineIDs []string, userID string) error

	// UnreconcileLine undoes the reconciliation group the line belongs to.
	UnreconcileLine(ctx context.Context, lineID string, userID string) error
}

// MoveSvcFacade combines all move-engine service interfaces
type MoveSvcFacade interface {
	MoveReaderSvc
	MoveWriterSvc
	ReconcilerSvc
}
