package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finacct/check_deposit_app/internal/apperrors"
	"github.com/finacct/check_deposit_app/internal/core/domain"
	portsrepo "github.com/finacct/check_deposit_app/internal/core/ports/repositories"
	"github.com/finacct/check_deposit_app/internal/models"
	"github.com/finacct/check_deposit_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxMoveRepository struct {
	BaseRepository
}

// newPgxMoveRepository creates a new repository for accounting moves and their lines.
func newPgxMoveRepository(pool PgxDB) portsrepo.MoveRepositoryWithTx {
	return &PgxMoveRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxMoveRepository implements portsrepo.MoveRepositoryWithTx
var _ portsrepo.MoveRepositoryWithTx = (*PgxMoveRepository)(nil)

const moveLineSelectColumns = `
	l.line_id, l.move_id, l.company_id, l.account_id, l.partner_id, l.name, l.ref,
	l.debit, l.credit, l.amount_currency, l.currency_code,
	l.reconciled, l.reconcile_id, l.check_deposit_id, l.parent_state,
	l.created_at, l.created_by, l.last_updated_at, l.last_updated_by
`

func scanMoveLine(row pgx.CollectableRow) (models.MoveLine, error) {
	var l models.MoveLine
	err := row.Scan(
		&l.LineID,
		&l.MoveID,
		&l.CompanyID,
		&l.AccountID,
		&l.PartnerID,
		&l.Name,
		&l.Ref,
		&l.Debit,
		&l.Credit,
		&l.AmountCurrency,
		&l.CurrencyCode,
		&l.Reconciled,
		&l.ReconcileID,
		&l.CheckDepositID,
		&l.ParentState,
		&l.CreatedAt,
		&l.CreatedBy,
		&l.LastUpdatedAt,
		&l.LastUpdatedBy,
	)
	return l, err
}

// SaveMove inserts a move and all its lines within its own DB transaction.
func (r *PgxMoveRepository) SaveMove(ctx context.Context, move domain.Move) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	if err := r.saveMove(ctx, tx, move); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveMoveTx inserts a move and all its lines inside the caller's transaction.
func (r *PgxMoveRepository) SaveMoveTx(ctx context.Context, tx pgx.Tx, move domain.Move) error {
	return r.saveMove(ctx, tx, move)
}

func (r *PgxMoveRepository) saveMove(ctx context.Context, db PgxDB, move domain.Move) error {
	modelMove := mapping.ToModelMove(move)
	moveQuery := `
		INSERT INTO moves (
			move_id, company_id, journal_id, date, ref, state,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := db.Exec(ctx, moveQuery,
		modelMove.MoveID,
		modelMove.CompanyID,
		modelMove.JournalID,
		modelMove.Date,
		modelMove.Ref,
		modelMove.State,
		modelMove.CreatedAt,
		modelMove.CreatedBy,
		modelMove.LastUpdatedAt,
		modelMove.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("move ID " + move.MoveID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save move "+move.MoveID, err)
	}

	lineQuery := `
		INSERT INTO move_lines (
			line_id, move_id, company_id, account_id, partner_id, name, ref,
			debit, credit, amount_currency, currency_code,
			reconciled, reconcile_id, check_deposit_id, parent_state,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	for _, line := range move.Lines {
		modelLine := mapping.ToModelMoveLine(line)
		_, err = db.Exec(ctx, lineQuery,
			modelLine.LineID,
			modelMove.MoveID,
			modelLine.CompanyID,
			modelLine.AccountID,
			modelLine.PartnerID,
			modelLine.Name,
			modelLine.Ref,
			modelLine.Debit,
			modelLine.Credit,
			modelLine.AmountCurrency,
			modelLine.CurrencyCode,
			modelLine.Reconciled,
			modelLine.ReconcileID,
			modelLine.CheckDepositID,
			modelLine.ParentState,
			modelLine.CreatedAt,
			modelLine.CreatedBy,
			modelLine.LastUpdatedAt,
			modelLine.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to save move line "+line.LineID, err)
		}
	}

	return nil
}

// FindMoveByID retrieves a move with its lines.
func (r *PgxMoveRepository) FindMoveByID(ctx context.Context, moveID string) (*domain.Move, error) {
	query := `
		SELECT move_id, company_id, journal_id, date, ref, state,
			created_at, created_by, last_updated_at, last_updated_by
		FROM moves
		WHERE move_id = $1;
	`
	var modelMove models.Move
	err := r.Pool.QueryRow(ctx, query, moveID).Scan(
		&modelMove.MoveID,
		&modelMove.CompanyID,
		&modelMove.JournalID,
		&modelMove.Date,
		&modelMove.Ref,
		&modelMove.State,
		&modelMove.CreatedAt,
		&modelMove.CreatedBy,
		&modelMove.LastUpdatedAt,
		&modelMove.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find move %s: %w", moveID, err)
	}

	lineQuery := `SELECT ` + moveLineSelectColumns + ` FROM move_lines l WHERE l.move_id = $1 ORDER BY l.line_id;`
	lines, err := r.queryLines(ctx, lineQuery, moveID)
	if err != nil {
		return nil, err
	}

	domainMove := mapping.ToDomainMove(modelMove)
	domainMove.Lines = lines
	return &domainMove, nil
}

// FindLinesByIDs retrieves move lines by their identifiers.
func (r *PgxMoveRepository) FindLinesByIDs(ctx context.Context, lineIDs []string) ([]domain.MoveLine, error) {
	if len(lineIDs) == 0 {
		return []domain.MoveLine{}, nil
	}
	query := `SELECT ` + moveLineSelectColumns + ` FROM move_lines l WHERE l.line_id = ANY($1) ORDER BY l.line_id;`
	return r.queryLines(ctx, query, lineIDs)
}

// FindLinesByDepositID retrieves the check lines attached to a deposit, oldest move first.
func (r *PgxMoveRepository) FindLinesByDepositID(ctx context.Context, depositID string) ([]domain.MoveLine, error) {
	query := `SELECT ` + moveLineSelectColumns + ` FROM move_lines l WHERE l.check_deposit_id = $1 ORDER BY l.created_at, l.line_id;`
	return r.queryLines(ctx, query, depositID)
}

// FindPendingCheckLines retrieves posted, unreconciled, positive-debit lines on the
// given account and currency that are not yet attached to any deposit.
func (r *PgxMoveRepository) FindPendingCheckLines(ctx context.Context, companyID string, accountID string, currencyCode string) ([]domain.MoveLine, error) {
	query := `SELECT ` + moveLineSelectColumns + `
		FROM move_lines l
		WHERE l.company_id = $1
			AND l.account_id = $2
			AND l.currency_code = $3
			AND l.parent_state = $4
			AND l.reconciled = false
			AND l.debit > 0
			AND l.check_deposit_id IS NULL
		ORDER BY l.created_at, l.line_id;
	`
	return r.queryLines(ctx, query, companyID, accountID, currencyCode, models.MovePosted)
}

func (r *PgxMoveRepository) queryLines(ctx context.Context, query string, args ...any) ([]domain.MoveLine, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query move lines", err)
	}
	defer rows.Close()

	modelLines, err := pgx.CollectRows(rows, scanMoveLine)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.MoveLine{}, nil
		}
		return nil, fmt.Errorf("failed to scan move lines: %w", err)
	}
	return mapping.ToDomainMoveLineSlice(modelLines), nil
}

// UpdateMoveState transitions a move between DRAFT and POSTED and keeps the
// denormalized parent state of its lines in sync, within its own DB transaction.
func (r *PgxMoveRepository) UpdateMoveState(ctx context.Context, moveID string, state domain.MoveState, updatedByUserID string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	if err := r.updateMoveState(ctx, tx, moveID, state, updatedByUserID, updatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateMoveStateTx is UpdateMoveState inside the caller's transaction.
func (r *PgxMoveRepository) UpdateMoveStateTx(ctx context.Context, tx pgx.Tx, moveID string, state domain.MoveState, updatedByUserID string, updatedAt time.Time) error {
	return r.updateMoveState(ctx, tx, moveID, state, updatedByUserID, updatedAt)
}

func (r *PgxMoveRepository) updateMoveState(ctx context.Context, db PgxDB, moveID string, state domain.MoveState, updatedByUserID string, updatedAt time.Time) error {
	moveQuery := `
		UPDATE moves
		SET state = $1, last_updated_at = $2, last_updated_by = $3
		WHERE move_id = $4;
	`
	result, err := db.Exec(ctx, moveQuery, models.MoveState(state), updatedAt, updatedByUserID, moveID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update state of move "+moveID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("move " + moveID + " not found")
	}

	lineQuery := `
		UPDATE move_lines
		SET parent_state = $1, last_updated_at = $2, last_updated_by = $3
		WHERE move_id = $4;
	`
	if _, err := db.Exec(ctx, lineQuery, models.MoveState(state), updatedAt, updatedByUserID, moveID); err != nil {
		return apperrors.NewAppError(500, "failed to update line states of move "+moveID, err)
	}

	return nil
}

// DeleteMove removes a move and its lines within its own DB transaction.
func (r *PgxMoveRepository) DeleteMove(ctx context.Context, moveID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	if err := r.deleteMove(ctx, tx, moveID); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteMoveTx is DeleteMove inside the caller's transaction.
func (r *PgxMoveRepository) DeleteMoveTx(ctx context.Context, tx pgx.Tx, moveID string) error {
	return r.deleteMove(ctx, tx, moveID)
}

func (r *PgxMoveRepository) deleteMove(ctx context.Context, db PgxDB, moveID string) error {
	if _, err := db.Exec(ctx, `DELETE FROM move_lines WHERE move_id = $1;`, moveID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of move "+moveID, err)
	}

	result, err := db.Exec(ctx, `DELETE FROM moves WHERE move_id = $1;`, moveID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete move "+moveID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("move " + moveID + " not found")
	}

	return nil
}

// SetLinesDeposit sets or clears the deposit back-link on the given lines.
func (r *PgxMoveRepository) SetLinesDeposit(ctx context.Context, lineIDs []string, depositID *string, updatedByUserID string, updatedAt time.Time) error {
	if len(lineIDs) == 0 {
		return nil
	}
	query := `
		UPDATE move_lines
		SET check_deposit_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE line_id = ANY($4);
	`
	result, err := r.Pool.Exec(ctx, query, depositID, updatedAt, updatedByUserID, lineIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update deposit link on move lines", err)
	}
	if int(result.RowsAffected()) != len(lineIDs) {
		return apperrors.NewNotFoundError("some move lines were not found")
	}
	return nil
}

// ReconcileLines marks the given lines as mutually reconciled under one group id.
func (r *PgxMoveRepository) ReconcileLines(ctx context.Context, lineIDs []string, reconcileID string, updatedByUserID string, updatedAt time.Time) error {
	return r.reconcileLines(ctx, r.Pool, lineIDs, reconcileID, updatedByUserID, updatedAt)
}

// ReconcileLinesTx is ReconcileLines inside the caller's transaction.
func (r *PgxMoveRepository) ReconcileLinesTx(ctx context.Context, tx pgx.Tx, lineIDs []string, reconcileID string, updatedByUserID string, updatedAt time.Time) error {
	return r.reconcileLines(ctx, tx, lineIDs, reconcileID, updatedByUserID, updatedAt)
}

func (r *PgxMoveRepository) reconcileLines(ctx context.Context, db PgxDB, lineIDs []string, reconcileID string, updatedByUserID string, updatedAt time.Time) error {
	if len(lineIDs) == 0 {
		return nil
	}
	query := `
		UPDATE move_lines
		SET reconciled = true, reconcile_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE line_id = ANY($4) AND reconciled = false;
	`
	result, err := db.Exec(ctx, query, reconcileID, updatedAt, updatedByUserID, lineIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reconcile move lines", err)
	}
	if int(result.RowsAffected()) != len(lineIDs) {
		return apperrors.NewConflictError("some lines are missing or already reconciled")
	}
	return nil
}

// UnreconcileGroup clears the reconciliation of every line in the group.
func (r *PgxMoveRepository) UnreconcileGroup(ctx context.Context, reconcileID string, updatedByUserID string, updatedAt time.Time) error {
	return r.unreconcileGroup(ctx, r.Pool, reconcileID, updatedByUserID, updatedAt)
}

// UnreconcileGroupTx is UnreconcileGroup inside the caller's transaction.
func (r *PgxMoveRepository) UnreconcileGroupTx(ctx context.Context, tx pgx.Tx, reconcileID string, updatedByUserID string, updatedAt time.Time) error {
	return r.unreconcileGroup(ctx, tx, reconcileID, updatedByUserID, updatedAt)
}

func (r *PgxMoveRepository) unreconcileGroup(ctx context.Context, db PgxDB, reconcileID string, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE move_lines
		SET reconciled = false, reconcile_id = NULL, last_updated_at = $1, last_updated_by = $2
		WHERE reconcile_id = $3;
	`
	result, err := db.Exec(ctx, query, updatedAt, updatedByUserID, reconcileID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to unreconcile group "+reconcileID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("reconcile group " + reconcileID + " not found")
	}
	return nil
}
