package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finacct/check_deposit_app/internal/apperrors"
	"github.com/finacct/check_deposit_app/internal/core/domain"
	portsrepo "github.com/finacct/check_deposit_app/internal/core/ports/repositories"
	portssvc "github.com/finacct/check_deposit_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// moveService implements the MoveSvcFacade interface. It is the posting engine
// the deposit workflow is built on.
type moveService struct {
	BaseService
	moveRepo    portsrepo.MoveRepositoryWithTx
	journalRepo portsrepo.JournalReader
}

// NewMoveService creates a new move service with the provided dependencies
func NewMoveService(
	moveRepo portsrepo.MoveRepositoryWithTx,
	journalRepo portsrepo.JournalReader,
) portssvc.MoveSvcFacade {
	return &moveService{
		moveRepo:    moveRepo,
		journalRepo: journalRepo,
	}
}

// Ensure moveService implements the MoveSvcFacade interface
var _ portssvc.MoveSvcFacade = (*moveService)(nil)

// GetMoveByID retrieves a move with its lines.
func (s *moveService) GetMoveByID(ctx context.Context, moveID string) (*domain.Move, error) {
	move, err := s.moveRepo.FindMoveByID(ctx, moveID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find move by ID",
				slog.String("move_id", moveID))
		}
		return nil, err
	}
	return move, nil
}

// validateMoveLines checks each line individually and the move as a whole.
func validateMoveLines(move *domain.Move) error {
	if len(move.Lines) < 2 {
		return apperrors.NewValidationFailedError("a move needs at least two lines")
	}
	for _, line := range move.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return apperrors.NewValidationFailedError("debit and credit must not be negative")
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return apperrors.NewValidationFailedError("a line cannot carry both a debit and a credit")
		}
		if line.AccountID == "" {
			return apperrors.NewValidationFailedError("every line needs an account")
		}
	}
	if !move.IsBalanced() {
		return apperrors.NewValidationFailedError("move lines must balance to zero")
	}
	return nil
}

// prepareMove assigns identifiers, audit fields and the DRAFT state to a move
// and its lines.
func prepareMove(move *domain.Move, creatorUserID string) {
	if move.MoveID == "" {
		move.MoveID = uuid.NewString()
	}
	now := time.Now()
	move.State = domain.MoveDraft
	move.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	for i := range move.Lines {
		line := &move.Lines[i]
		if line.LineID == "" {
			line.LineID = uuid.NewString()
		}
		line.MoveID = move.MoveID
		line.CompanyID = move.CompanyID
		line.ParentState = domain.MoveDraft
		line.AuditFields = move.AuditFields
	}
}

// CreateMove persists a draft move with its lines after validating them.
func (s *moveService) CreateMove(ctx context.Context, move domain.Move, creatorUserID string) (*domain.Move, error) {
	prepareMove(&move, creatorUserID)

	if err := validateMoveLines(&move); err != nil {
		return nil, err
	}

	if err := s.moveRepo.SaveMove(ctx, move); err != nil {
		s.LogError(ctx, err, "Failed to save move",
			slog.String("move_id", move.MoveID))
		return nil, err
	}

	s.LogInfo(ctx, "Move created",
		slog.String("move_id", move.MoveID),
		slog.Int("line_count", len(move.Lines)))
	return &move, nil
}

// PostMove validates that the move balances to zero and marks it POSTED.
func (s *moveService) PostMove(ctx context.Context, moveID string, userID string) error {
	move, err := s.moveRepo.FindMoveByID(ctx, moveID)
	if err != nil {
		return err
	}
	if move.State != domain.MoveDraft {
		return apperrors.NewConflictError("move " + moveID + " is already posted")
	}
	if err := validateMoveLines(move); err != nil {
		return err
	}

	if err := s.moveRepo.UpdateMoveState(ctx, moveID, domain.MovePosted, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to post move",
			slog.String("move_id", moveID))
		return err
	}

	s.LogInfo(ctx, "Move posted", slog.String("move_id", moveID))
	return nil
}

// UnpostMove returns a posted move to draft. Fails when the move's journal has
// lock_posted_entries set.
func (s *moveService) UnpostMove(ctx context.Context, moveID string, userID string) error {
	move, err := s.moveRepo.FindMoveByID(ctx, moveID)
	if err != nil {
		return err
	}
	if move.State != domain.MovePosted {
		return apperrors.NewConflictError("move " + moveID + " is not posted")
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, move.JournalID)
	if err != nil {
		return err
	}
	if journal.LockPostedEntries {
		return apperrors.NewConflictError("journal " + journal.Name + " does not allow cancelling posted entries")
	}

	if err := s.moveRepo.UpdateMoveState(ctx, moveID, domain.MoveDraft, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to unpost move",
			slog.String("move_id", moveID))
		return err
	}

	s.LogInfo(ctx, "Move returned to draft", slog.String("move_id", moveID))
	return nil
}

// DeleteMove removes a draft move and its lines.
func (s *moveService) DeleteMove(ctx context.Context, moveID string, userID string) error {
	move, err := s.moveRepo.FindMoveByID(ctx, moveID)
	if err != nil {
		return err
	}
	if move.State != domain.MoveDraft {
		return apperrors.NewConflictError("posted move " + moveID + " cannot be deleted")
	}

	if err := s.moveRepo.DeleteMove(ctx, moveID); err != nil {
		s.LogError(ctx, err, "Failed to delete move",
			slog.String("move_id", moveID))
		return err
	}

	s.LogInfo(ctx, "Move deleted", slog.String("move_id", moveID))
	return nil
}

// PostMoveWithReconciliation creates and posts the move, then reconciles each
// line of pairedLineIDs with the move line at the same index. Everything,
// including the finish callback, runs in one database transaction.
func (s *moveService) PostMoveWithReconciliation(ctx context.Context, move domain.Move, pairedLineIDs []string, creatorUserID string, finish func(ctx context.Context, tx pgx.Tx) error) (*domain.Move, error) {
	prepareMove(&move, creatorUserID)

	if err := validateMoveLines(&move); err != nil {
		return nil, err
	}
	if len(pairedLineIDs) > len(move.Lines) {
		return nil, apperrors.NewValidationFailedError("more paired lines than move lines")
	}

	paired, err := s.moveRepo.FindLinesByIDs(ctx, pairedLineIDs)
	if err != nil {
		return nil, err
	}
	if len(paired) != len(pairedLineIDs) {
		return nil, apperrors.NewNotFoundError("some move lines were not found")
	}
	byID := make(map[string]domain.MoveLine, len(paired))
	for _, line := range paired {
		byID[line.LineID] = line
	}
	for i, lineID := range pairedLineIDs {
		counterpart := byID[lineID]
		mirror := move.Lines[i]
		if counterpart.ParentState != domain.MovePosted {
			return nil, apperrors.NewValidationFailedError("only lines of posted moves can be reconciled")
		}
		if counterpart.Reconciled {
			return nil, apperrors.NewConflictError("line " + counterpart.LineID + " is already reconciled")
		}
		if counterpart.AccountID != mirror.AccountID {
			return nil, apperrors.NewValidationFailedError("reconciled lines must share one account")
		}
		if !counterpart.Balance().Add(mirror.Balance()).IsZero() {
			return nil, apperrors.NewValidationFailedError("reconciled lines must balance to zero")
		}
	}

	tx, err := s.moveRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.moveRepo.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	now := move.CreatedAt
	if err := s.moveRepo.SaveMoveTx(ctx, tx, move); err != nil {
		s.LogError(ctx, err, "Failed to save move",
			slog.String("move_id", move.MoveID))
		return nil, err
	}
	if err := s.moveRepo.UpdateMoveStateTx(ctx, tx, move.MoveID, domain.MovePosted, creatorUserID, now); err != nil {
		return nil, err
	}
	for i, lineID := range pairedLineIDs {
		if err := s.moveRepo.ReconcileLinesTx(ctx, tx, []string{lineID, move.Lines[i].LineID}, uuid.NewString(), creatorUserID, now); err != nil {
			s.LogError(ctx, err, "Failed to reconcile lines",
				slog.String("move_id", move.MoveID),
				slog.String("line_id", lineID))
			return nil, err
		}
	}
	if finish != nil {
		if err := finish(ctx, tx); err != nil {
			return nil, err
		}
	}
	if err := s.moveRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	move.State = domain.MovePosted
	for i := range move.Lines {
		move.Lines[i].ParentState = domain.MovePosted
	}

	s.LogInfo(ctx, "Move posted with reconciliations",
		slog.String("move_id", move.MoveID),
		slog.Int("line_count", len(move.Lines)),
		slog.Int("reconciled_pairs", len(pairedLineIDs)))
	return &move, nil
}

// RevertMove unposts the move, undoes every reconciliation group its lines
// belong to and deletes it, together with the finish callback in one database
// transaction. Fails when the move's journal has lock_posted_entries set.
func (s *moveService) RevertMove(ctx context.Context, moveID string, userID string, finish func(ctx context.Context, tx pgx.Tx) error) error {
	move, err := s.moveRepo.FindMoveByID(ctx, moveID)
	if err != nil {
		return err
	}
	if move.State != domain.MovePosted {
		return apperrors.NewConflictError("move " + moveID + " is not posted")
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, move.JournalID)
	if err != nil {
		return err
	}
	if journal.LockPostedEntries {
		return apperrors.NewConflictError("journal " + journal.Name + " does not allow cancelling posted entries")
	}

	tx, err := s.moveRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.moveRepo.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	now := time.Now()
	if err := s.moveRepo.UpdateMoveStateTx(ctx, tx, moveID, domain.MoveDraft, userID, now); err != nil {
		return err
	}
	// Clear every reconciliation group the move participates in before its
	// lines disappear.
	seen := map[string]bool{}
	for _, line := range move.Lines {
		if line.ReconcileID == nil || seen[*line.ReconcileID] {
			continue
		}
		seen[*line.ReconcileID] = true
		if err := s.moveRepo.UnreconcileGroupTx(ctx, tx, *line.ReconcileID, userID, now); err != nil {
			s.LogError(ctx, err, "Failed to unreconcile group",
				slog.String("reconcile_id", *line.ReconcileID))
			return err
		}
	}
	if err := s.moveRepo.DeleteMoveTx(ctx, tx, moveID); err != nil {
		return err
	}
	if finish != nil {
		if err := finish(ctx, tx); err != nil {
			return err
		}
	}
	if err := s.moveRepo.Commit(ctx, tx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Move reverted", slog.String("move_id", moveID))
	return nil
}

// ReconcileLines reconciles the given lines together: same account, posted moves,
// zero net balance.
func (s *moveService) ReconcileLines(ctx context.Context, lineIDs []string, userID string) error {
	if len(lineIDs) < 2 {
		return apperrors.NewValidationFailedError("reconciliation needs at least two lines")
	}

	lines, err := s.moveRepo.FindLinesByIDs(ctx, lineIDs)
	if err != nil {
		return err
	}
	if len(lines) != len(lineIDs) {
		return apperrors.NewNotFoundError("some move lines were not found")
	}

	accountID := lines[0].AccountID
	balance := decimal.Zero
	for _, line := range lines {
		if line.ParentState != domain.MovePosted {
			return apperrors.NewValidationFailedError("only lines of posted moves can be reconciled")
		}
		if line.Reconciled {
			return apperrors.NewConflictError("line " + line.LineID + " is already reconciled")
		}
		if line.AccountID != accountID {
			return apperrors.NewValidationFailedError("reconciled lines must share one account")
		}
		balance = balance.Add(line.Balance())
	}
	if !balance.IsZero() {
		return apperrors.NewValidationFailedError("reconciled lines must balance to zero")
	}

	reconcileID := uuid.NewString()
	if err := s.moveRepo.ReconcileLines(ctx, lineIDs, reconcileID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to reconcile lines",
			slog.String("reconcile_id", reconcileID))
		return err
	}

	s.LogInfo(ctx, "Lines reconciled",
		slog.String("reconcile_id", reconcileID),
		slog.Int("line_count", len(lineIDs)))
	return nil
}

// UnreconcileLine undoes the reconciliation group the line belongs to.
func (s *moveService) UnreconcileLine(ctx context.Context, lineID string, userID string) error {
	lines, err := s.moveRepo.FindLinesByIDs(ctx, []string{lineID})
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return apperrors.NewNotFoundError("move line " + lineID + " not found")
	}
	line := lines[0]
	if line.ReconcileID == nil {
		return apperrors.NewValidationFailedError("line " + lineID + " is not reconciled")
	}

	if err := s.moveRepo.UnreconcileGroup(ctx, *line.ReconcileID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to unreconcile group",
			slog.String("reconcile_id", *line.ReconcileID))
		return err
	}

	s.LogInfo(ctx, "Reconciliation undone",
		slog.String("reconcile_id", *line.ReconcileID))
	return nil
}
